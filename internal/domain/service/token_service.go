package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed claim set carried by an issued bearer token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and parses the bearer tokens returned on login.
// Tokens are stateless: the server keeps no record of them, and rotating
// the signing secret invalidates everything issued before.
type TokenService interface {
	// Issue signs a claim set {user_id, email, exp} for the given user.
	Issue(userID int64, email string) (string, error)

	// Parse validates the signature and expiry of a token string and
	// returns its claims. No endpoint of this service consumes tokens;
	// Parse exists for downstream verifiers and tests.
	Parse(tokenString string) (*Claims, error)
}
