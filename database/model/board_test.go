package model

import (
	"reflect"
	"testing"
)

func testBoard() *Board {
	return &Board{
		Id:   1,
		Name: "Trip",
		Categories: []Category{
			{Id: "c1", Name: "Food"},
			{Id: "c2", Name: "Transport"},
		},
		Products: []Product{
			{Id: "p1", Name: "Pizza", Price: 1000, Categories: []string{"c1"}},
			{Id: "p2", Name: "Ticket", Price: 250, Categories: []string{"c1", "c2"}},
		},
		Members: []Member{
			{Id: "m1", Name: "Ada", Categories: []string{"c1"}, Paid: 500},
			{Id: "m2", Name: "Bob", Categories: []string{"c2"}, Paid: 0},
		},
	}
}

func TestRemoveCategoryCascades(t *testing.T) {
	board := testBoard()

	if !board.RemoveCategory("c1") {
		t.Fatal("RemoveCategory(c1) = false, want true")
	}

	if len(board.Categories) != 1 || board.Categories[0].Id != "c2" {
		t.Errorf("categories after removal = %+v, want only c2", board.Categories)
	}
	for _, product := range board.Products {
		for _, id := range product.Categories {
			if id == "c1" {
				t.Errorf("product %s still references removed category", product.Id)
			}
		}
	}
	for _, member := range board.Members {
		for _, id := range member.Categories {
			if id == "c1" {
				t.Errorf("member %s still references removed category", member.Id)
			}
		}
	}

	// Unrelated references survive
	if !reflect.DeepEqual(board.Products[1].Categories, []string{"c2"}) {
		t.Errorf("p2 categories = %v, want [c2]", board.Products[1].Categories)
	}
	if !reflect.DeepEqual(board.Members[1].Categories, []string{"c2"}) {
		t.Errorf("m2 categories = %v, want [c2]", board.Members[1].Categories)
	}
}

func TestRemoveCategoryMissingId(t *testing.T) {
	board := testBoard()
	if board.RemoveCategory("nope") {
		t.Fatal("RemoveCategory(nope) = true, want false")
	}
	if len(board.Categories) != 2 || len(board.Products) != 2 || len(board.Members) != 2 {
		t.Errorf("board mutated by missing-id removal: %+v", board)
	}
}

func TestApplyCategoryUpdate(t *testing.T) {
	board := testBoard()
	if !board.ApplyCategoryUpdate("c1", &CategoryForm{Name: "Groceries"}) {
		t.Fatal("ApplyCategoryUpdate(c1) = false, want true")
	}
	if board.Categories[0].Name != "Groceries" {
		t.Errorf("category name = %q, want Groceries", board.Categories[0].Name)
	}
	if board.ApplyCategoryUpdate("nope", &CategoryForm{Name: "x"}) {
		t.Error("ApplyCategoryUpdate(nope) = true, want false")
	}
}

func TestApplyProductUpdate(t *testing.T) {
	board := testBoard()
	form := &ProductForm{Name: "Calzone", Price: 1200, Categories: []string{"c2"}}
	if !board.ApplyProductUpdate("p1", form) {
		t.Fatal("ApplyProductUpdate(p1) = false, want true")
	}
	got := board.Products[0]
	if got.Name != "Calzone" || got.Price != 1200 || !reflect.DeepEqual(got.Categories, []string{"c2"}) {
		t.Errorf("product after update = %+v", got)
	}
	if board.ApplyProductUpdate("nope", form) {
		t.Error("ApplyProductUpdate(nope) = true, want false")
	}
}

func TestRemoveProduct(t *testing.T) {
	board := testBoard()
	if !board.RemoveProduct("p2") {
		t.Fatal("RemoveProduct(p2) = false, want true")
	}
	if len(board.Products) != 1 || board.Products[0].Id != "p1" {
		t.Errorf("products after removal = %+v, want only p1", board.Products)
	}
	if board.RemoveProduct("p2") {
		t.Error("second RemoveProduct(p2) = true, want false")
	}
}

func TestApplyMemberUpdate(t *testing.T) {
	board := testBoard()
	form := &MemberForm{Name: "Ada L.", Categories: []string{"c1", "c2"}, Paid: 750}
	if !board.ApplyMemberUpdate("m1", form) {
		t.Fatal("ApplyMemberUpdate(m1) = false, want true")
	}
	got := board.Members[0]
	if got.Name != "Ada L." || got.Paid != 750 || !reflect.DeepEqual(got.Categories, []string{"c1", "c2"}) {
		t.Errorf("member after update = %+v", got)
	}
}

func TestRemoveMember(t *testing.T) {
	board := testBoard()
	if !board.RemoveMember("m1") {
		t.Fatal("RemoveMember(m1) = false, want true")
	}
	if len(board.Members) != 1 || board.Members[0].Id != "m2" {
		t.Errorf("members after removal = %+v, want only m2", board.Members)
	}
}

func TestFormCheckValid(t *testing.T) {
	tests := []struct {
		name    string
		form    interface{ CheckValid() error }
		wantErr bool
	}{
		{"board ok", &BoardForm{Name: "Trip"}, false},
		{"board empty name", &BoardForm{}, true},
		{"category ok", &CategoryForm{Name: "Food"}, false},
		{"category empty name", &CategoryForm{}, true},
		{"product ok", &ProductForm{Name: "Pizza", Price: 0}, false},
		{"product empty name", &ProductForm{Price: 100}, true},
		{"product negative price", &ProductForm{Name: "Pizza", Price: -1}, true},
		{"member ok", &MemberForm{Name: "Ada"}, false},
		{"member empty name", &MemberForm{Paid: 10}, true},
		{"member negative paid", &MemberForm{Name: "Ada", Paid: -1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.form.CheckValid()
			if (err != nil) != tc.wantErr {
				t.Errorf("CheckValid() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
