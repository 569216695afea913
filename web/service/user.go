package service

import (
	"strings"

	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/util/common"
	"github.com/domysh/spesometro/util/crypto"
)

var (
	ErrReservedUsername = common.NewErrorf("'%s' is reserved", model.ReservedUsername)
	ErrUsernameTaken    = common.NewError("username already taken")
)

type UserService struct{}

func (s *UserService) GetUsers() ([]*model.User, error) {
	db := database.GetDB()
	users := make([]*model.User, 0)
	err := db.Model(model.User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", strings.ToLower(username)).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AddUser creates a user. The reserved bootstrap username is rejected in
// any case variant, usernames are stored lowercase and must be unique at
// that normalized form.
func (s *UserService) AddUser(form *model.UserForm) (*model.User, error) {
	username := strings.ToLower(form.Username)
	if username == "" {
		return nil, common.NewError("username can not be empty")
	}
	if username == model.ReservedUsername {
		return nil, ErrReservedUsername
	}
	if form.Password == "" {
		return nil, common.NewError("a password is needed")
	}
	if !form.Role.Valid() {
		return nil, common.NewError("unknown role:", form.Role)
	}

	if _, err := s.GetUserByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !database.IsNotFound(err) {
		return nil, err
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: hashedPassword,
		Role:     form.Role,
	}
	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser edits a user in place. The bootstrap account cannot be
// renamed and no other user may take its name; an empty password keeps
// the stored hash.
func (s *UserService) UpdateUser(id int, form *model.UserForm) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	username := strings.ToLower(form.Username)
	if username == "" {
		return common.NewError("username can not be empty")
	}
	if !form.Role.Valid() {
		return common.NewError("unknown role:", form.Role)
	}
	if username == model.ReservedUsername && user.Username != model.ReservedUsername {
		return ErrReservedUsername
	}
	if user.Username == model.ReservedUsername && username != model.ReservedUsername {
		return ErrReservedUsername
	}

	if username != user.Username {
		if _, err := s.GetUserByUsername(username); err == nil {
			return ErrUsernameTaken
		} else if !database.IsNotFound(err) {
			return err
		}
	}

	user.Username = username
	user.Role = form.Role
	if form.Password != "" {
		hashedPassword, err := crypto.HashPasswordAsBcrypt(form.Password)
		if err != nil {
			return err
		}
		user.Password = hashedPassword
	}

	db := database.GetDB()
	return db.Save(user).Error
}

// ResetAdminPassword rehashes the bootstrap account password. Meant for
// operator recovery from the command line.
func (s *UserService) ResetAdminPassword(password string) error {
	if password == "" {
		return common.NewError("a password is needed")
	}
	user, err := s.GetUserByUsername(model.ReservedUsername)
	if err != nil {
		return err
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	db := database.GetDB()
	return db.Save(user).Error
}

// DelUser deletes a user. The bootstrap account is protected regardless
// of the caller's role.
func (s *UserService) DelUser(id int) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}
	if user.Username == model.ReservedUsername {
		return ErrReservedUsername
	}
	db := database.GetDB()
	return db.Delete(model.User{}, id).Error
}
