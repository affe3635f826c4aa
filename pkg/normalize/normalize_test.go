package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ventas-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"minusculas", "CAFE", "cafe"},
		{"tildes", "Café Señorial", "cafe senorial"},
		{"dieresis", "pingüino", "pinguino"},
		{"espacios colapsados", "  jabón   líquido  ", "jabon liquido"},
		{"vacio", "", ""},
		{"numeros y simbolos", "Arroz 500g #1", "arroz 500g #1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Fold(tc.in))
		})
	}
}
