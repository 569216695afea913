package controller

import (
	"strconv"

	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/web/entity"
	"github.com/domysh/spesometro/web/service"
	"github.com/domysh/spesometro/web/websocket"

	"github.com/gin-gonic/gin"
)

// BoardController handles board aggregates and their embedded categories,
// products and members. Reads are guest tier, mutations editor tier; the
// tiers are enforced by the router groups passed in.
type BoardController struct {
	boardService service.BoardService
}

// NewBoardController creates a new BoardController and sets up its routes
// on the guest-tier and editor-tier groups.
func NewBoardController(guest *gin.RouterGroup, editor *gin.RouterGroup) *BoardController {
	a := &BoardController{}
	a.initRouter(guest, editor)
	return a
}

func (a *BoardController) initRouter(guest *gin.RouterGroup, editor *gin.RouterGroup) {
	guest.GET("/boards", a.getBoards)
	guest.GET("/boards/:id", a.getBoard)
	guest.GET("/boards/:id/categories", a.getCategories)
	guest.GET("/boards/:id/products", a.getProducts)
	guest.GET("/boards/:id/members", a.getMembers)

	editor.PUT("/boards", a.addBoard)
	editor.POST("/boards/:id", a.updateBoard)
	editor.DELETE("/boards/:id", a.delBoard)

	editor.PUT("/boards/:id/categories", a.addCategory)
	editor.POST("/boards/:id/categories/:categoryId", a.updateCategory)
	editor.DELETE("/boards/:id/categories/:categoryId", a.delCategory)

	editor.PUT("/boards/:id/products", a.addProduct)
	editor.POST("/boards/:id/products/:productId", a.updateProduct)
	editor.DELETE("/boards/:id/products/:productId", a.delProduct)

	editor.PUT("/boards/:id/members", a.addMember)
	editor.POST("/boards/:id/members/:memberId", a.updateMember)
	editor.DELETE("/boards/:id/members/:memberId", a.delMember)
}

func boardId(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// getBoards retrieves the list of boards and related data.
func (a *BoardController) getBoards(c *gin.Context) {
	boards, err := a.boardService.GetBoards()
	if err != nil {
		jsonMsg(c, "get boards", err)
		return
	}
	jsonObj(c, boards, nil)
}

// getBoard retrieves a specific board by its ID.
func (a *BoardController) getBoard(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "get board", err)
		return
	}
	board, err := a.boardService.GetBoard(id)
	if err != nil {
		jsonMsg(c, "get board", err)
		return
	}
	jsonObj(c, board, nil)
}

func (a *BoardController) getCategories(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "get categories", err)
		return
	}
	board, err := a.boardService.GetBoard(id)
	if err != nil {
		jsonMsg(c, "get categories", err)
		return
	}
	jsonObj(c, board.Categories, nil)
}

func (a *BoardController) getProducts(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "get products", err)
		return
	}
	board, err := a.boardService.GetBoard(id)
	if err != nil {
		jsonMsg(c, "get products", err)
		return
	}
	jsonObj(c, board.Products, nil)
}

func (a *BoardController) getMembers(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "get members", err)
		return
	}
	board, err := a.boardService.GetBoard(id)
	if err != nil {
		jsonMsg(c, "get members", err)
		return
	}
	jsonObj(c, board.Members, nil)
}

// addBoard creates a new board with empty collections.
func (a *BoardController) addBoard(c *gin.Context) {
	form := &model.BoardForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "add board", err)
		return
	}
	board, err := a.boardService.AddBoard(form)
	if err != nil {
		jsonMsg(c, "add board", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(board.Id))
	jsonObj(c, board, nil)
}

// updateBoard replaces the editable board fields, leaving the embedded
// collections untouched.
func (a *BoardController) updateBoard(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "update board", err)
		return
	}
	form := &model.BoardForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "update board", err)
		return
	}
	if err := a.boardService.UpdateBoard(id, form); err != nil {
		jsonMsg(c, "update board", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id))
	jsonMsg(c, "update board", nil)
}

func (a *BoardController) delBoard(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "delete board", err)
		return
	}
	if err := a.boardService.DelBoard(id); err != nil {
		jsonMsg(c, "delete board", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id))
	jsonMsg(c, "delete board", nil)
}

func (a *BoardController) addCategory(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "add category", err)
		return
	}
	form := &model.CategoryForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "add category", err)
		return
	}
	newId, err := a.boardService.AddCategory(id, form)
	if err != nil {
		jsonMsg(c, "add category", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), newId)
	jsonObj(c, entity.IdResponse{Id: newId}, nil)
}

func (a *BoardController) updateCategory(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "update category", err)
		return
	}
	form := &model.CategoryForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "update category", err)
		return
	}
	categoryId := c.Param("categoryId")
	if err := a.boardService.UpdateCategory(id, categoryId, form); err != nil {
		jsonMsg(c, "update category", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), categoryId)
	jsonMsg(c, "update category", nil)
}

// delCategory removes a category; the category id is also removed from
// every product and member of the board within the same save.
func (a *BoardController) delCategory(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "delete category", err)
		return
	}
	categoryId := c.Param("categoryId")
	if err := a.boardService.DelCategory(id, categoryId); err != nil {
		jsonMsg(c, "delete category", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), categoryId)
	jsonMsg(c, "delete category", nil)
}

func (a *BoardController) addProduct(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "add product", err)
		return
	}
	form := &model.ProductForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "add product", err)
		return
	}
	newId, err := a.boardService.AddProduct(id, form)
	if err != nil {
		jsonMsg(c, "add product", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), newId)
	jsonObj(c, entity.IdResponse{Id: newId}, nil)
}

func (a *BoardController) updateProduct(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "update product", err)
		return
	}
	form := &model.ProductForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "update product", err)
		return
	}
	productId := c.Param("productId")
	if err := a.boardService.UpdateProduct(id, productId, form); err != nil {
		jsonMsg(c, "update product", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), productId)
	jsonMsg(c, "update product", nil)
}

func (a *BoardController) delProduct(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "delete product", err)
		return
	}
	productId := c.Param("productId")
	if err := a.boardService.DelProduct(id, productId); err != nil {
		jsonMsg(c, "delete product", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), productId)
	jsonMsg(c, "delete product", nil)
}

func (a *BoardController) addMember(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "add member", err)
		return
	}
	form := &model.MemberForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "add member", err)
		return
	}
	newId, err := a.boardService.AddMember(id, form)
	if err != nil {
		jsonMsg(c, "add member", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), newId)
	jsonObj(c, entity.IdResponse{Id: newId}, nil)
}

func (a *BoardController) updateMember(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "update member", err)
		return
	}
	form := &model.MemberForm{}
	if err := c.ShouldBind(form); err != nil {
		jsonMsg(c, "update member", err)
		return
	}
	memberId := c.Param("memberId")
	if err := a.boardService.UpdateMember(id, memberId, form); err != nil {
		jsonMsg(c, "update member", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), memberId)
	jsonMsg(c, "update member", nil)
}

func (a *BoardController) delMember(c *gin.Context) {
	id, err := boardId(c)
	if err != nil {
		jsonMsg(c, "delete member", err)
		return
	}
	memberId := c.Param("memberId")
	if err := a.boardService.DelMember(id, memberId); err != nil {
		jsonMsg(c, "delete member", err)
		return
	}
	websocket.BroadcastUpdate(strconv.Itoa(id), memberId)
	jsonMsg(c, "delete member", nil)
}
