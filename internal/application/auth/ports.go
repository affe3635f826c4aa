package auth

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// RegistrationTxRunner ejecuta el registro del comercio y su usuario admin en
// una sola transacción: si falla la creación del usuario no queda un comercio
// huérfano.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
