package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        Params
	}{
		{"默认值", 0, 0, Params{Page: 1, Limit: 10}},
		{"负数", -3, -1, Params{Page: 1, Limit: 10}},
		{"超过上限", 2, 500, Params{Page: 2, Limit: 100}},
		{"正常值", 3, 20, Params{Page: 3, Limit: 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.page, tc.limit))
		})
	}
}

func TestOffsetAndTotalPages(t *testing.T) {
	p := New(3, 20)
	assert.Equal(t, 40, p.Offset())

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(20))
	assert.Equal(t, 2, p.TotalPages(21))
}
