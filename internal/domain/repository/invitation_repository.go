package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// InvitationRepository puerto de persistencia para Invitation.
type InvitationRepository interface {
	Create(invitation *entity.Invitation) error
	GetByID(id string) (*entity.Invitation, error)
	GetByTokenHash(tokenHash string) (*entity.Invitation, error)
	// GetPendingByEmail busca una invitación pendiente del email en el comercio.
	GetPendingByEmail(companyID, email string) (*entity.Invitation, error)
	Update(invitation *entity.Invitation) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Invitation, error)
}
