package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type order string

const (
	orderAsc  order = "asc"
	orderDesc order = "desc"
)

func newOrderNormalizer() *Normalizer[order] {
	return NewNormalizer("sort order", map[string]order{
		"asc":  orderAsc,
		"desc": orderDesc,
	}, orderAsc)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newOrderNormalizer()

	tests := []struct {
		name  string
		input string
		want  order
	}{
		{"exact", "desc", orderDesc},
		{"case insensitive", "DESC", orderDesc},
		{"whitespace", "  asc ", orderAsc},
		{"empty uses default", "", orderAsc},
		{"unknown uses default", "random", orderAsc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Parse(t *testing.T) {
	n := newOrderNormalizer()

	v, err := n.Parse(" Desc ")
	require.NoError(t, err)
	assert.Equal(t, orderDesc, v)

	v, err = n.Parse("")
	require.NoError(t, err)
	assert.Equal(t, orderAsc, v)

	_, err = n.Parse("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sort order")
	assert.Contains(t, err.Error(), "asc, desc")
}

func TestNormalizer_ValidKeysSortedCopy(t *testing.T) {
	n := newOrderNormalizer()
	keys := n.ValidKeys()
	assert.Equal(t, []string{"asc", "desc"}, keys)

	keys[0] = "mutated"
	assert.Equal(t, []string{"asc", "desc"}, n.ValidKeys())
}
