package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail    map[string]*entity.User
	failCreate error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	if u, ok := f.byEmail[email]; ok && u.CompanyID == companyID {
		return u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(*entity.User) error { return nil }
func (f *fakeUserRepo) ListByCompany(string, int, int) ([]*entity.User, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(company *entity.Company) error {
	f.byID[company.ID] = company
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return f.byID[id], nil }
func (f *fakeCompanyRepo) Update(*entity.Company) error               { return nil }

// fakeRegTxRunner imita la semántica transaccional: las escrituras van a
// copias y solo se vuelcan a los repos reales si el closure termina sin error.
type fakeRegTxRunner struct {
	companyRepo *fakeCompanyRepo
	userRepo    *fakeUserRepo
}

func (f *fakeRegTxRunner) RunRegistration(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
) error) error {
	stagingCompanies := newFakeCompanyRepo()
	stagingUsers := newFakeUserRepo()
	stagingUsers.failCreate = f.userRepo.failCreate
	if err := fn(stagingCompanies, stagingUsers); err != nil {
		return err
	}
	for id, c := range stagingCompanies.byID {
		f.companyRepo.byID[id] = c
	}
	for email, u := range stagingUsers.byEmail {
		f.userRepo.byEmail[email] = u
	}
	return nil
}

type authFixture struct {
	uc          *auth.AuthUseCase
	userRepo    *fakeUserRepo
	companyRepo *fakeCompanyRepo
}

func newAuthFixture() *authFixture {
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	uc := auth.NewAuthUseCase(
		userRepo,
		&fakeRegTxRunner{companyRepo: companyRepo, userRepo: userRepo},
		auth.JWTConfig{Secret: "secreto-de-pruebas", ExpMinutes: 60, Issuer: "ventas-api"},
	)
	return &authFixture{uc: uc, userRepo: userRepo, companyRepo: companyRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaComercioYAdmin(t *testing.T) {
	fx := newAuthFixture()

	resp, err := fx.uc.Register(dto.RegisterRequest{
		CompanyName: "Tienda La Esquina",
		Email:       "dueno@ejemplo.com",
		Password:    "clave-segura",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.CompanyID)
	require.NotNil(t, fx.companyRepo.byID[resp.CompanyID])

	userID, companyID, role, err := jwt.Parse("secreto-de-pruebas", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, resp.CompanyID, companyID)
	assert.Equal(t, entity.RoleAdmin, role)

	user := fx.userRepo.byEmail["dueno@ejemplo.com"]
	require.NotNil(t, user)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clave-segura")))
}

func TestRegister_EmailYaRegistrado(t *testing.T) {
	fx := newAuthFixture()
	fx.userRepo.byEmail["dueno@ejemplo.com"] = &entity.User{ID: "u1", Email: "dueno@ejemplo.com"}

	_, err := fx.uc.Register(dto.RegisterRequest{
		CompanyName: "Otra Tienda",
		Email:       "dueno@ejemplo.com",
		Password:    "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_FalloDelUsuarioNoDejaComercioHuerfano(t *testing.T) {
	fx := newAuthFixture()
	fx.userRepo.failCreate = errors.New("insert users: unique violation")

	_, err := fx.uc.Register(dto.RegisterRequest{
		CompanyName: "Tienda La Esquina",
		Email:       "dueno@ejemplo.com",
		Password:    "clave-segura",
	})
	require.Error(t, err)

	assert.Empty(t, fx.companyRepo.byID, "la transacción revierte el comercio junto con el usuario")
	assert.Empty(t, fx.userRepo.byEmail)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func seedUser(fx *authFixture, status string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	user := &entity.User{
		ID:           "u1",
		CompanyID:    "c1",
		Email:        "cajero@ejemplo.com",
		PasswordHash: string(hash),
		Name:         "Cajero",
		Role:         entity.RoleCajero,
		Status:       status,
	}
	fx.userRepo.byEmail[user.Email] = user
	return user
}

func TestLogin_CredencialesValidas(t *testing.T) {
	fx := newAuthFixture()
	user := seedUser(fx, "active")

	resp, err := fx.uc.Login(dto.LoginRequest{Email: user.Email, Password: "clave-segura"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	fx := newAuthFixture()
	seedUser(fx, "active")

	_, err := fx.uc.Login(dto.LoginRequest{Email: "cajero@ejemplo.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	fx := newAuthFixture()

	_, err := fx.uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	fx := newAuthFixture()
	seedUser(fx, "inactive")

	_, err := fx.uc.Login(dto.LoginRequest{Email: "cajero@ejemplo.com", Password: "clave-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
