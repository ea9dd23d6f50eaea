package auth

import (
	"github.com/medicard/backend/internal/auth/jwt"
	"github.com/medicard/backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

type Port interface {
	jwt.Port
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
}

// Core bundles password hashing with the token service so callers
// deal with a single credential port.
type Core struct {
	*jwt.Core
}

func New(conf config.Config) *Core {
	return &Core{Core: jwt.New(conf)}
}

func (a *Core) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), bcrypt.DefaultCost)
	return string(bytes), err
}

func (a *Core) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
