package model

import (
	"github.com/domysh/spesometro/util/common"
)

// Category groups products and members inside a board.
type Category struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Product is a purchasable item of a board, priced in the smallest
// currency unit.
type Product struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Categories []string `json:"categories"`
}

// Member is a participant of a board with the amount they already paid,
// in the smallest currency unit.
type Member struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Paid       int64    `json:"paid"`
}

// Board is the aggregate root. Categories, products and members are owned
// exclusively by their board and persisted with it as a single document:
// every mutation loads the whole board, edits it in memory and saves it
// back. Concurrent edits to the same board race last-write-wins.
type Board struct {
	Id         int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories" gorm:"serializer:json"`
	Products   []Product  `json:"products" gorm:"serializer:json"`
	Members    []Member   `json:"members" gorm:"serializer:json"`
}

// BoardForm carries the editable board fields.
type BoardForm struct {
	Name string `json:"name" form:"name"`
}

func (f *BoardForm) CheckValid() error {
	if f.Name == "" {
		return common.NewError("board name can not be empty")
	}
	return nil
}

// CategoryForm carries the editable category fields.
type CategoryForm struct {
	Name string `json:"name" form:"name"`
}

func (f *CategoryForm) CheckValid() error {
	if f.Name == "" {
		return common.NewError("category name can not be empty")
	}
	return nil
}

// ProductForm carries the editable product fields.
type ProductForm struct {
	Name       string   `json:"name" form:"name"`
	Price      int64    `json:"price" form:"price"`
	Categories []string `json:"categories" form:"categories"`
}

func (f *ProductForm) CheckValid() error {
	if f.Name == "" {
		return common.NewError("product name can not be empty")
	}
	if f.Price < 0 {
		return common.NewError("product price can not be negative")
	}
	return nil
}

// MemberForm carries the editable member fields.
type MemberForm struct {
	Name       string   `json:"name" form:"name"`
	Categories []string `json:"categories" form:"categories"`
	Paid       int64    `json:"paid" form:"paid"`
}

func (f *MemberForm) CheckValid() error {
	if f.Name == "" {
		return common.NewError("member name can not be empty")
	}
	if f.Paid < 0 {
		return common.NewError("member paid amount can not be negative")
	}
	return nil
}

// ApplyCategoryUpdate copies the form fields onto the first category
// matching id. Returns false when no category matches; the board is then
// left untouched.
func (b *Board) ApplyCategoryUpdate(id string, form *CategoryForm) bool {
	for i := range b.Categories {
		if b.Categories[i].Id == id {
			b.Categories[i].Name = form.Name
			return true
		}
	}
	return false
}

// RemoveCategory removes the category with the given id and cascades:
// the id is stripped from the category list of every product and member
// of the board, so no dangling reference survives the save.
func (b *Board) RemoveCategory(id string) bool {
	found := false
	categories := b.Categories[:0]
	for _, category := range b.Categories {
		if category.Id == id {
			found = true
			continue
		}
		categories = append(categories, category)
	}
	b.Categories = categories

	for i := range b.Products {
		b.Products[i].Categories = removeId(b.Products[i].Categories, id)
	}
	for i := range b.Members {
		b.Members[i].Categories = removeId(b.Members[i].Categories, id)
	}
	return found
}

// ApplyProductUpdate copies the form fields onto the first product
// matching id. Returns false when no product matches.
func (b *Board) ApplyProductUpdate(id string, form *ProductForm) bool {
	for i := range b.Products {
		if b.Products[i].Id == id {
			b.Products[i].Name = form.Name
			b.Products[i].Price = form.Price
			b.Products[i].Categories = form.Categories
			return true
		}
	}
	return false
}

// RemoveProduct removes the product with the given id.
func (b *Board) RemoveProduct(id string) bool {
	found := false
	products := b.Products[:0]
	for _, product := range b.Products {
		if product.Id == id {
			found = true
			continue
		}
		products = append(products, product)
	}
	b.Products = products
	return found
}

// ApplyMemberUpdate copies the form fields onto the first member
// matching id. Returns false when no member matches.
func (b *Board) ApplyMemberUpdate(id string, form *MemberForm) bool {
	for i := range b.Members {
		if b.Members[i].Id == id {
			b.Members[i].Name = form.Name
			b.Members[i].Categories = form.Categories
			b.Members[i].Paid = form.Paid
			return true
		}
	}
	return false
}

// RemoveMember removes the member with the given id.
func (b *Board) RemoveMember(id string) bool {
	found := false
	members := b.Members[:0]
	for _, member := range b.Members {
		if member.Id == id {
			found = true
			continue
		}
		members = append(members, member)
	}
	b.Members = members
	return found
}

func removeId(ids []string, id string) []string {
	out := ids[:0]
	for _, ele := range ids {
		if ele != id {
			out = append(out, ele)
		}
	}
	return out
}
