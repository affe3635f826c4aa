package entity

import "time"

// Estados de una invitación.
const (
	InvitationPendiente = "pendiente"
	InvitationAceptada  = "aceptada"
	InvitationCancelada = "cancelada"
)

// Invitation representa una invitación para que un nuevo usuario se una al
// comercio. Solo se persiste el hash SHA-256 del token; el token plano viaja
// una única vez en el correo de invitación.
type Invitation struct {
	ID         string
	CompanyID  string
	Email      string
	Role       string // rol que recibirá el usuario al aceptar
	TokenHash  string
	Status     string // pendiente, aceptada, cancelada
	InvitedBy  string
	AcceptedBy string // ID del usuario creado al aceptar
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired indica si la invitación ya venció.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
