package dto

import "time"

// CreateInvitationRequest entrada para invitar un usuario al comercio.
type CreateInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin gerente cajero"`
}

// AcceptInvitationRequest entrada para aceptar una invitación (público, con el token del correo).
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=8"`
}

// InvitationResponse salida de una invitación. El token nunca se expone.
type InvitationResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	InvitedBy string    `json:"invited_by"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// InvitationListResponse lista paginada de invitaciones.
type InvitationListResponse struct {
	Items []InvitationResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
