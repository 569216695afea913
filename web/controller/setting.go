package controller

import (
	"github.com/domysh/spesometro/web/entity"
	"github.com/domysh/spesometro/web/service"

	"github.com/gin-gonic/gin"
)

// SettingController handles admin-tier panel configuration.
type SettingController struct {
	settingService service.SettingService
}

// NewSettingController creates a new SettingController and sets up its routes.
func NewSettingController(g *gin.RouterGroup) *SettingController {
	a := &SettingController{}
	a.initRouter(g)
	return a
}

func (a *SettingController) initRouter(g *gin.RouterGroup) {
	g.GET("/settings", a.getAllSetting)
	g.POST("/settings", a.updateSetting)
}

func (a *SettingController) getAllSetting(c *gin.Context) {
	allSetting, err := a.settingService.GetAllSetting()
	if err != nil {
		jsonMsg(c, "get settings", err)
		return
	}
	jsonObj(c, allSetting, nil)
}

// updateSetting stores the submitted settings. Listen address, port, base
// path and TLS files take effect on the next server restart.
func (a *SettingController) updateSetting(c *gin.Context) {
	allSetting := &entity.AllSetting{}
	if err := c.ShouldBind(allSetting); err != nil {
		jsonMsg(c, "update settings", err)
		return
	}
	if err := a.settingService.UpdateAllSetting(allSetting); err != nil {
		jsonMsg(c, "update settings", err)
		return
	}
	jsonMsg(c, "update settings", nil)
}
