package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxe/internal/domains/pricing/service"
)

func TestFancyRound(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{name: "above the nearest hundred", price: 1050, want: 1099},
		{name: "exactly on a hundred drops below", price: 1000, want: 999},
		{name: "already a charm price", price: 999, want: 999},
		{name: "holiday multiplied base", price: 2499 * 1.5, want: 3799},
		{name: "small price", price: 120, want: 199},
		{name: "low boundary", price: 101, want: 199},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.FancyRound(tt.price))
		})
	}
}

func TestFancyRound_AlwaysEndsIn99(t *testing.T) {
	for price := 150.0; price < 20000; price += 137.5 {
		got := service.FancyRound(price)

		assert.Equal(t, 99.0, math.Mod(got, 100), "price %.2f rounded to %.2f", price, got)
	}
}
