package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kiosquito/internal/application/validation"
	"github.com/jhoicas/kiosquito/internal/domain"
)

type sample struct {
	Name  string           `json:"name" validate:"notblank,max=10"`
	Price decimal.Decimal  `json:"price" validate:"gt=0"`
	Rate  *decimal.Decimal `json:"rate" validate:"omitempty,gt=0"`
	Code  *string          `json:"code" validate:"omitempty,alphanum,min=2,max=4"`
	Stock *int             `json:"stock" validate:"omitempty,gte=0"`
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func TestStruct(t *testing.T) {
	cases := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{"válido", sample{Name: "Agua", Price: decimal.NewFromInt(50)}, ""},
		{"nombre en blanco", sample{Name: "   ", Price: decimal.NewFromInt(1)}, "name es obligatorio"},
		{"precio cero", sample{Name: "Agua", Price: decimal.Zero}, "price debe ser mayor que 0"},
		{"precio negativo", sample{Name: "Agua", Price: decimal.NewFromInt(-3)}, "price"},
		{"precio fraccionario", sample{Name: "Agua", Price: decimal.RequireFromString("0.01")}, ""},
		{"precio menor que el mínimo float64", sample{Name: "Agua", Price: decimal.RequireFromString("1e-400")}, ""},
		{"precio negativo diminuto", sample{Name: "Agua", Price: decimal.RequireFromString("-1e-400")}, "price debe ser mayor que 0"},
		{"tasa diminuta presente", sample{Name: "A", Price: decimal.NewFromInt(1), Rate: dec("1e-400")}, ""},
		{"tasa ausente", sample{Name: "A", Price: decimal.NewFromInt(1), Rate: nil}, ""},
		{"tasa cero presente", sample{Name: "A", Price: decimal.NewFromInt(1), Rate: dec("0")}, "rate"},
		{"código con guion", sample{Name: "A", Price: decimal.NewFromInt(1), Code: str("U-S")}, "code solo admite letras y números"},
		{"stock cero presente", sample{Name: "A", Price: decimal.NewFromInt(1), Stock: num(0)}, ""},
		{"stock negativo", sample{Name: "A", Price: decimal.NewFromInt(1), Stock: num(-1)}, "stock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Struct(tc.in)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
