package service

import (
	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/database/model"

	"github.com/google/uuid"
)

// BoardService operates on whole board documents. Every mutation loads the
// aggregate, edits it in memory and saves it back in one write, so the
// category cascade is atomic from the caller's point of view. There is no
// optimistic locking: two concurrent edits to the same board race and the
// later save wins.
type BoardService struct{}

func (s *BoardService) GetBoards() ([]*model.Board, error) {
	db := database.GetDB()
	boards := make([]*model.Board, 0)
	err := db.Model(model.Board{}).Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (s *BoardService) GetBoard(id int) (*model.Board, error) {
	db := database.GetDB()
	board := &model.Board{}
	err := db.Model(model.Board{}).
		Where("id = ?", id).
		First(board).
		Error
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) AddBoard(form *model.BoardForm) (*model.Board, error) {
	if err := form.CheckValid(); err != nil {
		return nil, err
	}
	board := &model.Board{
		Name:       form.Name,
		Categories: []model.Category{},
		Products:   []model.Product{},
		Members:    []model.Member{},
	}
	db := database.GetDB()
	if err := db.Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

// UpdateBoard replaces the editable board fields, leaving the embedded
// collections untouched.
func (s *BoardService) UpdateBoard(id int, form *model.BoardForm) error {
	if err := form.CheckValid(); err != nil {
		return err
	}
	board, err := s.GetBoard(id)
	if err != nil {
		return err
	}
	board.Name = form.Name
	db := database.GetDB()
	return db.Save(board).Error
}

func (s *BoardService) DelBoard(id int) error {
	if _, err := s.GetBoard(id); err != nil {
		return err
	}
	db := database.GetDB()
	return db.Delete(model.Board{}, id).Error
}

func (s *BoardService) AddCategory(boardId int, form *model.CategoryForm) (string, error) {
	if err := form.CheckValid(); err != nil {
		return "", err
	}
	board, err := s.GetBoard(boardId)
	if err != nil {
		return "", err
	}
	newId := uuid.NewString()
	board.Categories = append(board.Categories, model.Category{Id: newId, Name: form.Name})
	db := database.GetDB()
	return newId, db.Save(board).Error
}

// UpdateCategory edits the first category matching categoryId. A missing
// id is a silent no-op, matching the cascade-tolerant design.
func (s *BoardService) UpdateCategory(boardId int, categoryId string, form *model.CategoryForm) error {
	if err := form.CheckValid(); err != nil {
		return err
	}
	board, err := s.GetBoard(boardId)
	if err != nil {
		return err
	}
	board.ApplyCategoryUpdate(categoryId, form)
	db := database.GetDB()
	return db.Save(board).Error
}

// DelCategory removes the category and cascades the removal of its id
// from every product and member of the board within the same save.
func (s *BoardService) DelCategory(boardId int, categoryId string) error {
	board, err := s.GetBoard(boardId)
	if err != nil {
		return err
	}
	board.RemoveCategory(categoryId)
	db := database.GetDB()
	return db.Save(board).Error
}

func (s *BoardService) AddProduct(boardId int, form *model.ProductForm) (string, error) {
	if err := form.CheckValid(); err != nil {
		return "", err
	}
	board, err := s.GetBoard(boardId)
	if err != nil {
		return "", err
	}
	newId := uuid.NewString()
	board.Products = append(board.Products, model.Product{
		Id:         newId,
		Name:       form.Name,
		Price:      form.Price,
		Categories: form.Categories,
	})
	db := database.GetDB()
	return newId, db.Save(board).Error
}

func (s *BoardService) UpdateProduct(boardId int, productId string, form *model.ProductForm) error {
	if err := form.CheckValid(); err != nil {
		return err
	}
	board, err := s.GetBoard(boardId)
	if err != nil {
		return err
	}
	board.ApplyProductUpdate(productId, form)
	db := database.GetDB()
	return db.Save(board).Error
}

func (s *BoardService) DelProduct(boardId int, productId string) error {
	board, err := s.GetBoard(boardId)
	if err != nil {
		return err
	}
	board.RemoveProduct(productId)
	db := database.GetDB()
	return db.Save(board).Error
}

func (s *BoardService) AddMember(boardId int, form *model.MemberForm) (string, error) {
	if err := form.CheckValid(); err != nil {
		return "", err
	}
	board, err := s.GetBoard(boardId)
	if err != nil {
		return "", err
	}
	newId := uuid.NewString()
	board.Members = append(board.Members, model.Member{
		Id:         newId,
		Name:       form.Name,
		Categories: form.Categories,
		Paid:       form.Paid,
	})
	db := database.GetDB()
	return newId, db.Save(board).Error
}

func (s *BoardService) UpdateMember(boardId int, memberId string, form *model.MemberForm) error {
	if err := form.CheckValid(); err != nil {
		return err
	}
	board, err := s.GetBoard(boardId)
	if err != nil {
		return err
	}
	board.ApplyMemberUpdate(memberId, form)
	db := database.GetDB()
	return db.Save(board).Error
}

func (s *BoardService) DelMember(boardId int, memberId string) error {
	board, err := s.GetBoard(boardId)
	if err != nil {
		return err
	}
	board.RemoveMember(memberId)
	db := database.GetDB()
	return db.Save(board).Error
}
