package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults", Params{}, Params{Page: 1, Limit: DefaultLimit}},
		{"negative limit", Params{Page: 2, Limit: -5}, Params{Page: 2, Limit: 1}},
		{"limit above max", Params{Page: 1, Limit: 500}, Params{Page: 1, Limit: MaxLimit}},
		{"page below one", Params{Page: -3, Limit: 10}, Params{Page: 1, Limit: 10}},
		{"page above max", Params{Page: math.MaxInt, Limit: 10}, Params{Page: MaxPage, Limit: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestOffsetAndMeta(t *testing.T) {
	p := Params{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())

	meta := NewMeta(p, 21)
	assert.Equal(t, Meta{Page: 3, Limit: 10, Total: 21, TotalPages: 3}, meta)

	assert.Equal(t, 0, NewMeta(Params{}, 0).TotalPages)
}

func TestMetaCapsLimitAndCountsPages(t *testing.T) {
	assert.Equal(t, MaxLimit, NewMeta(Params{Page: 1, Limit: 200}, 500).Limit)

	p := Params{Page: 2, Limit: 10}
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 3, NewMeta(p, 25).TotalPages)
}

func TestOffsetNeverOverflows(t *testing.T) {
	p := Params{Page: 200000000000000000, Limit: MaxLimit}
	assert.Equal(t, (MaxPage-1)*MaxLimit, p.Offset())
	assert.Positive(t, p.Offset())
}
