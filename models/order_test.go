package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusShipped, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusShipped, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusDelivered, OrderStatusDelivered, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    OrderStatus
		wantErr bool
	}{
		{"Pending", OrderStatusPending, false},
		{"shipped", OrderStatusShipped, false},
		{"DELIVERED", OrderStatusDelivered, false},
		{"  delivered  ", OrderStatusDelivered, false},
		{"cancelled", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseOrderStatus(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseOrderStatus(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOrderStatus(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseOrderStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
