package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated caller as seen by handlers. It is a narrow view
// of the employee record; feature packages get it from the request context.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// EmployeeStore is the slice of the employee repository auth needs. The
// concrete adapter lives in auth/postgres so this package stays free of
// storage concerns.
type EmployeeStore interface {
	GetCredentials(username string) (userID int64, passwordHash string, isActive bool, err error)
	GetUser(userID int64) (*User, error)
	ForcePasswordChange(userID int64) (bool, error)

	// UpdatePassword persists a new hash through the employee update path so
	// the pre-update lifecycle hook observes the change.
	UpdatePassword(userID int64, newHash string) error
}

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type TokenGenerator interface {
	GenerateAccessToken(userID int64) (string, error)
	GenerateRefreshToken(userID int64) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type userCtxKey struct{}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*User)
	return user, ok
}
