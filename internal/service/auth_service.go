package service

import (
	"errors"

	"go-shop-pos/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPasscode = errors.New("invalid passcode")

// AuthService guards the owner-only surface (catalog editor, export).
// There is exactly one credential: the shop passcode.
type AuthService interface {
	Login(passcode string) (string, error)
}

type authService struct {
	passcodeHash []byte
	shopName     string
}

func NewAuthService(passcode, shopName string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &authService{passcodeHash: hash, shopName: shopName}, nil
}

func (s *authService) Login(passcode string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		return "", ErrInvalidPasscode
	}
	return jwt.GenerateToken(s.shopName)
}
