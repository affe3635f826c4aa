package mail

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

func TestInvitationBody_EscapaHTML(t *testing.T) {
	body := invitationBody(`Tienda <script>alert(1)</script>`, `admin"`, "https://pos.ejemplo.com/invitaciones/aceptar?token=abc")

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Tienda &lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, body, "admin&#34;")
	assert.Contains(t, body, `href="https://pos.ejemplo.com/invitaciones/aceptar?token=abc"`)
}

func TestLowStockBody_EscapaHTML(t *testing.T) {
	items := []dto.LowStockItemDTO{
		{
			SKU:          "CAFE-500",
			ProductName:  `Café <img src=x onerror=alert(1)>`,
			LocationName: "Sede & Bodega",
			Quantity:     decimal.NewFromInt(2),
			MinStock:     decimal.NewFromInt(5),
		},
	}
	body := lowStockBody(items)

	assert.NotContains(t, body, "<img")
	assert.Contains(t, body, "Café &lt;img src=x onerror=alert(1)&gt;")
	assert.Contains(t, body, "Sede &amp; Bodega")
	assert.Contains(t, body, "<td>2</td><td>5</td>")
}
