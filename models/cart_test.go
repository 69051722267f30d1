package models

import (
	"math"
	"testing"
)

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price    float64
		discount float64
		want     float64
	}{
		{100, 0, 100},
		{100, 10, 90},
		{100, 100, 0},
		{19.99, 25, 14.9925},
	}
	for _, c := range cases {
		p := Product{Price: c.price, Discount: c.discount}
		if got := p.DiscountedPrice(); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("DiscountedPrice(price=%v, discount=%v) = %v, want %v", c.price, c.discount, got, c.want)
		}
	}
}

func TestRecomputeTotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Product: Product{Price: 100, Discount: 10}, Quantity: 3},
		{Product: Product{Price: 19.99, Discount: 0}, Quantity: 2},
	}}
	cart.RecomputeTotal()
	if cart.TotalPrice != 309.98 {
		t.Errorf("TotalPrice = %v, want 309.98", cart.TotalPrice)
	}
}

func TestRecomputeTotalRoundsToCents(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{Product: Product{Price: 19.99, Discount: 25}, Quantity: 1},
	}}
	cart.RecomputeTotal()
	if cart.TotalPrice != 14.99 {
		t.Errorf("TotalPrice = %v, want 14.99", cart.TotalPrice)
	}
}

func TestRecomputeTotalEmptyCart(t *testing.T) {
	cart := Cart{TotalPrice: 42}
	cart.RecomputeTotal()
	if cart.TotalPrice != 0 {
		t.Errorf("TotalPrice = %v, want 0", cart.TotalPrice)
	}
}
