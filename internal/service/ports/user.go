package ports

import (
	"context"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TokenManager interface {
	Issue(session domain.Session) (string, error)
	Parse(token string) (domain.Session, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
