// Package controller provides the HTTP request handlers of the spesometro
// panel API: authentication, boards, users, settings and real-time updates.
package controller

import (
	"net/http"

	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/web/entity"
	"github.com/domysh/spesometro/web/service"

	"github.com/gin-gonic/gin"
)

// AuthController handles login and token issuance.
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController and sets up its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
}

// LoginForm carries the credentials of a login request.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// login verifies the submitted credentials and returns a bearer token.
func (a *AuthController) login(c *gin.Context) {
	form := &LoginForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "login", err)
		return
	}

	token, err := a.authService.Login(form.Username, form.Password)
	if err != nil {
		logger.Infof("wrong login attempt for user %s from ip %s", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, err.Error())
		return
	}

	logger.Infof("user %s logged in from ip %s", form.Username, getRemoteIp(c))
	jsonObj(c, entity.Token{AccessToken: token, TokenType: "bearer"}, nil)
}
