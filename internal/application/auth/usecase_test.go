package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-tiendas/internal/application/auth"
	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/pkg/jwt"
)

type memUserRepo struct {
	byUsername map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *memUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Delete(string) error                   { return nil }

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "inventario-test"}

func TestRegisterUser_HasheaYPersiste(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleVendedor, out.Role, "rol por defecto")
	assert.True(t, out.Active)

	stored, _ := repo.GetByUsername("maria")
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash, "nunca se guarda el password plano")
	assert.NotEmpty(t, stored.ID)
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "otra-clave"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "clave-segura", Role: "SUPERUSUARIO"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenValidoConClaims(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "admin", Password: "clave-segura", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "clave-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, username, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "clave-segura"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	// Usuario inexistente responde igual que password incorrecto.
	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "clave-segura"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "maria", Password: "clave-segura"})
	require.NoError(t, err)

	stored, _ := repo.GetByUsername(out.Username)
	stored.Active = false
	require.NoError(t, repo.Update(stored))

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "clave-segura"})
	require.ErrorIs(t, err, domain.ErrForbidden)
}
