package service

import (
	"strings"
	"time"

	"github.com/domysh/spesometro/database"
	"github.com/domysh/spesometro/database/model"
	"github.com/domysh/spesometro/logger"
	"github.com/domysh/spesometro/util/common"
	"github.com/domysh/spesometro/util/crypto"
)

// loginDelay blunts credential bruteforcing. It is a goroutine suspension,
// concurrent requests keep running while a login waits.
const loginDelay = 300 * time.Millisecond

var (
	ErrEmptyCredentials = common.NewError("username and password can not be empty")
	ErrUserNotFound     = common.NewError("user not found")
	ErrWrongPassword    = common.NewError("wrong password")
)

type AuthService struct {
	userService    UserService
	secretService  SecretService
	settingService SettingService
}

// Login verifies the credentials and issues a signed session token.
// Empty credentials fail immediately, before the anti-bruteforce delay
// and without touching the store.
func (s *AuthService) Login(username string, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	time.Sleep(loginDelay)

	user, err := s.userService.GetUserByUsername(strings.ToLower(username))
	if database.IsNotFound(err) {
		return "", ErrUserNotFound
	} else if err != nil {
		return "", err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return "", ErrWrongPassword
	}

	secret, err := s.secretService.GetSecret()
	if err != nil {
		return "", err
	}
	expiry, err := s.settingService.GetTokenExpiry()
	if err != nil {
		return "", err
	}

	return signToken(secret, user, time.Now().Add(expiry))
}

// ResolveCaller maps a bearer token to the calling user. An absent,
// malformed, tampered or expired token, or a token naming a user that no
// longer exists, all resolve to nil (anonymous). Auth failures degrade
// silently to anonymous instead of failing the request; the caller just
// loses privilege.
func (s *AuthService) ResolveCaller(tokenString string) *model.User {
	if tokenString == "" {
		return nil
	}

	secret, err := s.secretService.GetSecret()
	if err != nil {
		logger.Warning("resolve caller: get secret failed:", err)
		return nil
	}

	claims, err := parseToken(secret, tokenString)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(claims.UserId)
	if err != nil {
		return nil
	}
	return user
}
