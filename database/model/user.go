package model

// ReservedUsername is the bootstrap account identity. It cannot be created,
// renamed to, or deleted through the mutation API.
const ReservedUsername = "admin"

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// UserForm carries the editable user fields. Usernames are case-folded to
// lowercase before validation and storage.
type UserForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     Role   `json:"role" form:"role"`
}
