// Package mail envía los correos salientes del sistema: invitaciones y el
// resumen diario de stock bajo.
package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/invitation"
	"github.com/jhoicas/Ventas-api/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

var _ invitation.Mailer = (*GomailSender)(nil)

// GomailSender envía correos vía SMTP usando gomail.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendInvitation envía el correo de invitación con el enlace de aceptación.
func (s *GomailSender) SendInvitation(to, companyName, role, acceptURL string) error {
	subject := fmt.Sprintf("Invitación a %s", companyName)
	return s.send(to, subject, invitationBody(companyName, role, acceptURL))
}

// SendLowStockDigest envía el resumen de productos con stock bajo.
func (s *GomailSender) SendLowStockDigest(to, companyName string, items []dto.LowStockItemDTO) error {
	subject := fmt.Sprintf("Stock bajo en %s (%d productos)", companyName, len(items))
	return s.send(to, subject, lowStockBody(items))
}

// Los cuerpos son HTML y los nombres de comercio, rol y producto vienen del
// usuario: se escapan siempre.

func invitationBody(companyName, role, acceptURL string) string {
	return fmt.Sprintf(`
		<p>Hola,</p>
		<p>Has sido invitado a unirte a <strong>%s</strong> con el rol <strong>%s</strong>.</p>
		<p><a href="%s">Aceptar invitación</a></p>
		<p>El enlace vence en 72 horas. Si no esperabas este correo, ignóralo.</p>`,
		html.EscapeString(companyName), html.EscapeString(role), html.EscapeString(acceptURL))
}

func lowStockBody(items []dto.LowStockItemDTO) string {
	var rows strings.Builder
	for _, it := range items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(it.SKU), html.EscapeString(it.ProductName),
			html.EscapeString(it.LocationName), it.Quantity.String(), it.MinStock.String())
	}
	return fmt.Sprintf(`
		<p>Estos productos están en el umbral de stock mínimo o por debajo:</p>
		<table border="1" cellpadding="4" cellspacing="0">
			<tr><th>SKU</th><th>Producto</th><th>Sede</th><th>Stock</th><th>Mínimo</th></tr>
			%s
		</table>`, rows.String())
}

func (s *GomailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
