package repository

import (
	"context"

	"github.com/jhoicas/kiosquito/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	// GetByUsername devuelve nil, nil si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
