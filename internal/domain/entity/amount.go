package entity

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// amountContext é o contexto decimal usado em todas as somas de custo e uso.
var amountContext = apd.BaseContext.WithPrecision(34)

// Amount é um valor decimal exato para custos e quantidades de uso do CUR.
type Amount struct {
	value apd.Decimal
}

// ParseAmount converte texto em Amount. NaN e infinito são rejeitados.
func ParseAmount(s string) (Amount, error) {
	var d apd.Decimal
	if _, _, err := d.SetString(strings.TrimSpace(s)); err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return Amount{}, fmt.Errorf("invalid amount %q: not a finite number", s)
	}
	return Amount{value: d}, nil
}

// NewAmountFromInt64 cria um Amount inteiro.
func NewAmountFromInt64(i int64) Amount {
	var d apd.Decimal
	d.SetInt64(i)
	return Amount{value: d}
}

// Add returns the sum of a and other.
func (a Amount) Add(other Amount) Amount {
	var result apd.Decimal
	amountContext.Add(&result, &a.value, &other.value)
	return Amount{value: result}
}

func (a Amount) Cmp(other Amount) int {
	return a.value.Cmp(&other.value)
}

// ExceedsMeanBy informa se a > factor × (total / count). A comparação é feita em decimal
// como a × count > factor × total, sem divisão.
func (a Amount) ExceedsMeanBy(total Amount, count int, factor float64) bool {
	var n, f, lhs, rhs apd.Decimal
	n.SetInt64(int64(count))
	if _, err := f.SetFloat64(factor); err != nil {
		return false
	}
	amountContext.Mul(&lhs, &a.value, &n)
	amountContext.Mul(&rhs, &total.value, &f)
	return lhs.Cmp(&rhs) > 0
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Float64 converte para float64; usado apenas nas médias e limiares.
func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

// String formata sem notação científica (ex.: "1E+3" vira "1000").
func (a Amount) String() string {
	return a.value.Text('f')
}

// MarshalJSON emite o valor como número JSON.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
