package controller

import (
	"strconv"

	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/web/service"
	"github.com/domysh/spesometro/web/websocket"

	"github.com/gin-gonic/gin"
)

// UserController handles admin-tier user management.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController and sets up its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/users", a.getUsers)
	g.GET("/users/:id", a.getUser)
	g.PUT("/users", a.addUser)
	g.POST("/users/:id", a.updateUser)
	g.DELETE("/users/:id", a.delUser)
}

func (a *UserController) getUsers(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		jsonMsg(c, "get users", err)
		return
	}
	jsonObj(c, users, nil)
}

func (a *UserController) getUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "get user", err)
		return
	}
	user, err := a.userService.GetUser(id)
	if err != nil {
		jsonMsg(c, "get user", err)
		return
	}
	jsonObj(c, user, nil)
}

func (a *UserController) addUser(c *gin.Context) {
	form := &model.UserForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "add user", err)
		return
	}
	user, err := a.userService.AddUser(form)
	if err != nil {
		jsonMsg(c, "add user", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(user.Id))
	jsonObj(c, user, nil)
}

func (a *UserController) updateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "update user", err)
		return
	}
	form := &model.UserForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "update user", err)
		return
	}
	if err := a.userService.UpdateUser(id, form); err != nil {
		jsonMsg(c, "update user", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id))
	jsonMsg(c, "update user", nil)
}

func (a *UserController) delUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "delete user", err)
		return
	}
	if err := a.userService.DelUser(id); err != nil {
		jsonMsg(c, "delete user", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id))
	jsonMsg(c, "delete user", nil)
}
