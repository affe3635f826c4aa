package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación del puerto InvitationRepository sobre PostgreSQL.
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository construye el adaptador de persistencia para invitaciones.
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

const invitationColumns = `id, company_id, email, role, token_hash, status, invited_by, accepted_by, expires_at, created_at, updated_at`

// Create persiste una nueva invitación.
func (r *InvitationRepo) Create(invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (id, company_id, email, role, token_hash, status, invited_by, accepted_by, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invitation.ID, invitation.CompanyID, invitation.Email, invitation.Role, invitation.TokenHash,
		invitation.Status, invitation.InvitedBy, invitation.AcceptedBy, invitation.ExpiresAt,
		invitation.CreatedAt, invitation.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetByID obtiene una invitación por ID.
func (r *InvitationRepo) GetByID(id string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByTokenHash busca una invitación por el hash del token.
func (r *InvitationRepo) GetByTokenHash(tokenHash string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token_hash = $1`
	return r.scanOne(query, tokenHash)
}

// GetPendingByEmail busca una invitación pendiente del email en el comercio.
func (r *InvitationRepo) GetPendingByEmail(companyID, email string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE company_id = $1 AND email = $2 AND status = 'pendiente'`
	return r.scanOne(query, companyID, email)
}

// Update actualiza estado y campos de aceptación de la invitación.
func (r *InvitationRepo) Update(invitation *entity.Invitation) error {
	query := `
		UPDATE invitations SET status = $2, accepted_by = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invitation.ID, invitation.Status, invitation.AcceptedBy, invitation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invitation: %w", err)
	}
	return nil
}

// ListByCompany lista invitaciones del comercio, opcionalmente por estado.
func (r *InvitationRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE company_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invitation
	for rows.Next() {
		var i entity.Invitation
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.Email, &i.Role, &i.TokenHash, &i.Status,
			&i.InvitedBy, &i.AcceptedBy, &i.ExpiresAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

func (r *InvitationRepo) scanOne(query string, args ...any) (*entity.Invitation, error) {
	var i entity.Invitation
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.CompanyID, &i.Email, &i.Role, &i.TokenHash, &i.Status,
		&i.InvitedBy, &i.AcceptedBy, &i.ExpiresAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return &i, nil
}
