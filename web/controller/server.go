package controller

import (
	"strconv"

	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes host status and recent logs to admins.
type ServerController struct {
	serverService service.ServerService
}

// NewServerController creates a new ServerController and sets up its routes.
func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g.GET("/server/status", a.status)
	g.GET("/server/logs/:count", a.getLogs)
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, a.serverService.GetStatus(), nil)
}

// getLogs returns up to :count recent log lines at or below the level
// query parameter (default info).
func (a *ServerController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		jsonMsg(c, "get logs", err)
		return
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, logger.GetLogs(count, level), nil)
}
