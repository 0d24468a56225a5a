package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.byEmail[u.Email] = u; return nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "bodega-api"}
}

func TestRegisterUser_HasheaYAsignaRolPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@bodega.local",
		Password: "clave-segura",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleBodeguero, user.Role)
	assert.Equal(t, "ana@bodega.local", user.Name, "sin nombre explícito usa el email")
	stored := repo.byEmail["ana@bodega.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash, "el password nunca se guarda plano")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@bodega.local", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@bodega.local", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_GeneraTokenConUsuarioYRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@bodega.local",
		Password: "clave-segura",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@bodega.local", Password: "clave-segura"})
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testJWTConfig().Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@bodega.local", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@bodega.local", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@bodega.local", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@bodega.local", Password: "clave-segura"})
	require.NoError(t, err)
	repo.byEmail["ana@bodega.local"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@bodega.local", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
