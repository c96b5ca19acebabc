package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/kiosquito/internal/application/auth"
	"github.com/jhoicas/kiosquito/internal/application/dto"
	"github.com/jhoicas/kiosquito/internal/domain"
	"github.com/jhoicas/kiosquito/internal/domain/entity"
	pkgjwt "github.com/jhoicas/kiosquito/pkg/jwt"
)

type memUsers struct {
	users map[string]*entity.User
	err   error
}

func (m *memUsers) Create(_ context.Context, u *entity.User) (int64, error) {
	u.ID = int64(len(m.users) + 1)
	m.users[u.Username] = u
	return u.ID, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[username], nil
}

const secret = "secreto-de-prueba"

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memUsers) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &memUsers{users: map[string]*entity.User{}}
	_, _ = repo.Create(context.Background(), &entity.User{Username: "admin", PasswordHash: string(hash), CreatedAt: time.Now()})
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "kiosquito"}), repo
}

func TestLogin_OK(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)

	claims, err := pkgjwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "kiosquito", claims.Issuer)
}

func TestLogin_Rechazos(t *testing.T) {
	uc, repo := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.err = errors.New("disco")
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	assert.EqualError(t, err, "disco")
}
