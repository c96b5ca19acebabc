package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
	"github.com/jhoicas/kiosquito/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

type userRow struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Create persiste un usuario. ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?) RETURNING id`
	var id int64
	err := r.q.GetContext(ctx, &id, r.q.Rebind(query), user.Username, user.PasswordHash, dbTime(user.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, storageErr("insert user", err)
	}
	user.ID = id
	return id, nil
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
	var row userRow
	if err := r.q.GetContext(ctx, &row, r.q.Rebind(query), username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get user", err)
	}
	return &entity.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// DeleteByUsername borra un usuario; devuelve filas afectadas.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	res, err := r.q.ExecContext(ctx, r.q.Rebind(`DELETE FROM users WHERE username = ?`), username)
	if err != nil {
		return 0, storageErr("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete user", err)
	}
	return n, nil
}
