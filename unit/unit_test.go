// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetricPx(t *testing.T) {
	m := Metric{PxPerDp: 2}
	for _, tc := range []struct {
		v    Value
		want int
	}{
		{Px(10), 10},
		{Px(10.4), 10},
		{Px(10.5), 11},
		{Dp(10), 20},
		{Dp(10.3), 21},
	} {
		if got := m.Px(tc.v); got != tc.want {
			t.Errorf("Px(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	if got := Identity.Px(Dp(3)); got != 3 {
		t.Errorf("Identity.Px(3dp) = %d, want 3", got)
	}
}

func TestScale(t *testing.T) {
	v := Dp(8).Scale(1.5)
	if v.V != 12 || v.U != UnitDp {
		t.Errorf("got %v, want 12dp", v)
	}
}

func TestString(t *testing.T) {
	if got := Dp(10.25).String(); got != "10.25dp" {
		t.Errorf("got %q", got)
	}
	if got := Px(4).String(); got != "4px" {
		t.Errorf("got %q", got)
	}
}
