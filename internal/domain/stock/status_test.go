package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/inventario-tiendas/internal/domain/stock"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Classify es función pura de (cantidad, minimo); tabla sobre los tres estados
// y sus fronteras.
func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		quantity string
		minimum  string
		want     string
	}{
		{"cero sin minimo", "0", "0", stock.StatusSinStock},
		{"cero con minimo", "0", "10", stock.StatusSinStock},
		{"bajo minimo", "3", "10", stock.StatusBajoMinimo},
		{"igual al minimo es bajo minimo", "10", "10", stock.StatusBajoMinimo},
		{"igual al minimo fraccional", "15.00", "15", stock.StatusBajoMinimo},
		{"sobre el minimo", "10.01", "10", stock.StatusOK},
		{"minimo cero con stock", "1", "0", stock.StatusOK},
		{"cantidades grandes", "99999.5", "100", stock.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Classify(d(tc.quantity), d(tc.minimum))
			assert.Equal(t, tc.want, got)
		})
	}
}
