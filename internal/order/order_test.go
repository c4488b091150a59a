package order

import (
	"errors"
	"testing"
)

func TestNewKeepsFields(t *testing.T) {
	for _, tc := range []struct{ id, amount int }{{0, 1}, {1, 5}, {42, 1_000_000}} {
		o, err := New(tc.id, tc.amount)
		if err != nil {
			t.Fatalf("new order %+v: %v", tc, err)
		}
		if o.ID() != tc.id || o.Amount() != tc.amount {
			t.Fatalf("expected id=%d amount=%d, got id=%d amount=%d", tc.id, tc.amount, o.ID(), o.Amount())
		}
	}
}

func TestNewRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		id, amount int
		want       error
	}{
		{-1, 5, ErrInvalidID},
		{-1, 0, ErrInvalidID},
		{3, 0, ErrInvalidAmount},
		{3, -7, ErrInvalidAmount},
	}
	for _, tc := range cases {
		o, err := New(tc.id, tc.amount)
		if !errors.Is(err, tc.want) {
			t.Fatalf("New(%d, %d): expected %v, got %v", tc.id, tc.amount, tc.want, err)
		}
		if o != nil {
			t.Fatalf("New(%d, %d): expected nil order on failure", tc.id, tc.amount)
		}
	}
}
