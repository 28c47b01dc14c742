package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageMeta_PrevNext(t *testing.T) {
	var absent *PageMeta
	assert.False(t, absent.CanPrev())
	assert.False(t, absent.CanNext())
	assert.Equal(t, 1, absent.CurrentPage())
	assert.Equal(t, 1, absent.TotalPages())

	tests := []struct {
		meta     PageMeta
		wantPrev bool
		wantNext bool
	}{
		{PageMeta{Page: 1, Pages: 1}, false, false},
		{PageMeta{Page: 1, Pages: 3}, false, true},
		{PageMeta{Page: 2, Pages: 3}, true, true},
		{PageMeta{Page: 3, Pages: 3}, true, false},
		{PageMeta{Page: 4, Pages: 3}, true, false},
		{PageMeta{Page: 0, Pages: 0}, false, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d pages=%d", tt.meta.Page, tt.meta.Pages), func(t *testing.T) {
			m := tt.meta
			assert.Equal(t, tt.wantPrev, m.CanPrev())
			assert.Equal(t, tt.wantNext, m.CanNext())
		})
	}
}

func TestParams_SetKeepsInsertionOrder(t *testing.T) {
	var p Params
	p = p.Set("q", "villa").Set("status", "Available").Set("limit", 50).Set("q", "house")

	assert.Equal(t, Params{
		{Key: "q", Value: "house"},
		{Key: "status", Value: "Available"},
		{Key: "limit", Value: 50},
	}, p)

	v, ok := p.Get("limit")
	assert.True(t, ok)
	assert.Equal(t, 50, v)
	_, ok = p.Get("page")
	assert.False(t, ok)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil, "fallback"))
	assert.Equal(t, "Not allowed", ErrorMessage(NewRequestError(403, "Not allowed"), "fallback"))
	assert.Equal(t, "Not allowed", ErrorMessage(fmt.Errorf("wrapped: %w", NewRequestError(403, "Not allowed")), "fallback"))
	assert.Equal(t, "Title is required", ErrorMessage(NewValidationError("Title is required"), "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(errors.New("dial tcp: connection refused"), "fallback"))
}

func TestFormatPrice(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	assert.Equal(t, "-", FormatPrice(nil))
	assert.Equal(t, "-", FormatPrice(price(math.NaN())))
	assert.Equal(t, "-", FormatPrice(price(math.Inf(1))))
	assert.Equal(t, "950", FormatPrice(price(950)))
	assert.Equal(t, "12,345", FormatPrice(price(12345)))
	assert.Equal(t, "1,00,000", FormatPrice(price(100000)))
	assert.Equal(t, "12,34,567", FormatPrice(price(1234567)))
}

func TestPropertyFilters_IsEmpty(t *testing.T) {
	assert.True(t, PropertyFilters{}.IsEmpty())
	assert.True(t, PropertyFilters{Q: "   "}.IsEmpty())
	assert.False(t, PropertyFilters{Status: "Sold"}.IsEmpty())
	assert.False(t, PropertyFilters{Q: "villa"}.IsEmpty())
}
