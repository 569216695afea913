package service

import (
	"testing"

	"github.com/domysh/spesometro/database/model"
)

func TestBoardLifecycle(t *testing.T) {
	setupTestDB(t)
	boardService := BoardService{}

	board, err := boardService.AddBoard(&model.BoardForm{Name: "Trip"})
	if err != nil {
		t.Fatalf("AddBoard: %v", err)
	}
	if board.Id == 0 {
		t.Fatal("AddBoard assigned no id")
	}

	stored, err := boardService.GetBoard(board.Id)
	if err != nil {
		t.Fatalf("GetBoard: %v", err)
	}
	if stored.Name != "Trip" {
		t.Errorf("name = %q, want Trip", stored.Name)
	}
	if len(stored.Categories) != 0 || len(stored.Products) != 0 || len(stored.Members) != 0 {
		t.Errorf("new board not empty: %+v", stored)
	}

	if err := boardService.UpdateBoard(board.Id, &model.BoardForm{Name: "Rome Trip"}); err != nil {
		t.Fatalf("UpdateBoard: %v", err)
	}
	stored, err = boardService.GetBoard(board.Id)
	if err != nil {
		t.Fatalf("GetBoard: %v", err)
	}
	if stored.Name != "Rome Trip" {
		t.Errorf("name after update = %q, want Rome Trip", stored.Name)
	}

	if err := boardService.DelBoard(board.Id); err != nil {
		t.Fatalf("DelBoard: %v", err)
	}
	if _, err := boardService.GetBoard(board.Id); err == nil {
		t.Error("deleted board still readable")
	}
	if err := boardService.DelBoard(board.Id); err == nil {
		t.Error("deleting a missing board succeeded")
	}
}

func TestCategoryCascadePersists(t *testing.T) {
	setupTestDB(t)
	boardService := BoardService{}

	board, err := boardService.AddBoard(&model.BoardForm{Name: "Trip"})
	if err != nil {
		t.Fatalf("AddBoard: %v", err)
	}

	categoryId, err := boardService.AddCategory(board.Id, &model.CategoryForm{Name: "Food"})
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	productId, err := boardService.AddProduct(board.Id, &model.ProductForm{
		Name:       "Pizza",
		Price:      1000,
		Categories: []string{categoryId},
	})
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	memberId, err := boardService.AddMember(board.Id, &model.MemberForm{
		Name:       "Ada",
		Categories: []string{categoryId},
		Paid:       500,
	})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	if err := boardService.DelCategory(board.Id, categoryId); err != nil {
		t.Fatalf("DelCategory: %v", err)
	}

	stored, err := boardService.GetBoard(board.Id)
	if err != nil {
		t.Fatalf("GetBoard: %v", err)
	}
	if len(stored.Categories) != 0 {
		t.Errorf("categories after delete = %+v, want none", stored.Categories)
	}
	if len(stored.Products) != 1 || stored.Products[0].Id != productId {
		t.Fatalf("products = %+v, want the one added", stored.Products)
	}
	if len(stored.Products[0].Categories) != 0 {
		t.Errorf("product still references deleted category: %v", stored.Products[0].Categories)
	}
	if len(stored.Members) != 1 || stored.Members[0].Id != memberId {
		t.Fatalf("members = %+v, want the one added", stored.Members)
	}
	if len(stored.Members[0].Categories) != 0 {
		t.Errorf("member still references deleted category: %v", stored.Members[0].Categories)
	}
}

func TestEmbeddedEdits(t *testing.T) {
	setupTestDB(t)
	boardService := BoardService{}

	board, err := boardService.AddBoard(&model.BoardForm{Name: "Trip"})
	if err != nil {
		t.Fatalf("AddBoard: %v", err)
	}
	categoryId, err := boardService.AddCategory(board.Id, &model.CategoryForm{Name: "Food"})
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}

	t.Run("update category", func(t *testing.T) {
		if err := boardService.UpdateCategory(board.Id, categoryId, &model.CategoryForm{Name: "Groceries"}); err != nil {
			t.Fatalf("UpdateCategory: %v", err)
		}
		stored, err := boardService.GetBoard(board.Id)
		if err != nil {
			t.Fatalf("GetBoard: %v", err)
		}
		if stored.Categories[0].Name != "Groceries" {
			t.Errorf("category name = %q, want Groceries", stored.Categories[0].Name)
		}
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		if err := boardService.UpdateCategory(board.Id, "nope", &model.CategoryForm{Name: "x"}); err != nil {
			t.Errorf("UpdateCategory(missing) error = %v, want nil", err)
		}
		if err := boardService.DelProduct(board.Id, "nope"); err != nil {
			t.Errorf("DelProduct(missing) error = %v, want nil", err)
		}
	})

	t.Run("product and member edits persist", func(t *testing.T) {
		productId, err := boardService.AddProduct(board.Id, &model.ProductForm{Name: "Pizza", Price: 1000})
		if err != nil {
			t.Fatalf("AddProduct: %v", err)
		}
		if err := boardService.UpdateProduct(board.Id, productId, &model.ProductForm{Name: "Calzone", Price: 1200}); err != nil {
			t.Fatalf("UpdateProduct: %v", err)
		}

		memberId, err := boardService.AddMember(board.Id, &model.MemberForm{Name: "Ada"})
		if err != nil {
			t.Fatalf("AddMember: %v", err)
		}
		if err := boardService.UpdateMember(board.Id, memberId, &model.MemberForm{Name: "Ada", Paid: 750}); err != nil {
			t.Fatalf("UpdateMember: %v", err)
		}

		stored, err := boardService.GetBoard(board.Id)
		if err != nil {
			t.Fatalf("GetBoard: %v", err)
		}
		if stored.Products[0].Name != "Calzone" || stored.Products[0].Price != 1200 {
			t.Errorf("product = %+v", stored.Products[0])
		}
		if stored.Members[0].Paid != 750 {
			t.Errorf("member = %+v", stored.Members[0])
		}

		if err := boardService.DelMember(board.Id, memberId); err != nil {
			t.Fatalf("DelMember: %v", err)
		}
		stored, err = boardService.GetBoard(board.Id)
		if err != nil {
			t.Fatalf("GetBoard: %v", err)
		}
		if len(stored.Members) != 0 {
			t.Errorf("members after delete = %+v, want none", stored.Members)
		}
	})

	t.Run("rejects invalid forms", func(t *testing.T) {
		if _, err := boardService.AddProduct(board.Id, &model.ProductForm{Name: "x", Price: -1}); err == nil {
			t.Error("negative price accepted")
		}
		if _, err := boardService.AddMember(board.Id, &model.MemberForm{Name: ""}); err == nil {
			t.Error("empty member name accepted")
		}
		if _, err := boardService.AddBoard(&model.BoardForm{}); err == nil {
			t.Error("empty board name accepted")
		}
	})
}
