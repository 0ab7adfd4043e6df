package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(6, 7); !ok || got != 42 {
		t.Fatalf("MulOverflowSafe(6,7)=%d,%v want 42,true", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow for MaxInt/2+1 * 2")
	}
	if _, ok := MulOverflowSafe(-1, 8); ok {
		t.Fatalf("negative operands must be rejected")
	}
}

func TestRegionBytes(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		elemSize int
		want     int
		wantErr  bool
	}{
		{"empty", 0, 8, 0, false},
		{"zero sized elements", 1000, 0, 0, false},
		{"ints", 4, 8, 32, false},
		{"negative count", -1, 8, 0, true},
		{"negative size", 1, -8, 0, true},
		{"overflow", math.MaxInt / 4, 8, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RegionBytes(tt.count, tt.elemSize)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("RegionBytes(%d,%d) expected error", tt.count, tt.elemSize)
				}
				return
			}
			if err != nil {
				t.Fatalf("RegionBytes(%d,%d) unexpected error: %v", tt.count, tt.elemSize, err)
			}
			if got != tt.want {
				t.Fatalf("RegionBytes(%d,%d)=%d want %d", tt.count, tt.elemSize, got, tt.want)
			}
		})
	}
}

func TestGrowCap(t *testing.T) {
	cases := []struct{ cur, need, want int }{
		{0, 1, 1},
		{1, 2, 2},
		{2, 3, 4},
		{4, 4, 4},
		{4, 9, 16},
		{0, 5, 8},
	}
	for _, c := range cases {
		if got := GrowCap(c.cur, c.need); got != c.want {
			t.Fatalf("GrowCap(%d,%d)=%d want %d", c.cur, c.need, got, c.want)
		}
	}
	if got := GrowCap(math.MaxInt/2+1, math.MaxInt); got != math.MaxInt {
		t.Fatalf("GrowCap near MaxInt=%d want MaxInt", got)
	}
}
