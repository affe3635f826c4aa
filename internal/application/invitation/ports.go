package invitation

// Mailer envía el correo de invitación con el enlace de aceptación.
// El token plano solo viaja en ese correo.
type Mailer interface {
	SendInvitation(to, companyName, role, acceptURL string) error
}
