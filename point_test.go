package vgr

import "testing"

func TestRectCorners(t *testing.T) {
	// Triangle-strip order: min, top-right, bottom-left, max.
	got := Rect{Min: P(1, 2), Max: P(5, 8)}.Corners()
	want := [4]Point{{1, 2}, {5, 2}, {1, 8}, {5, 8}}
	if got != want {
		t.Errorf("Corners() = %+v, want %+v", got, want)
	}
}

func TestRectExpand(t *testing.T) {
	got := Rect{Min: P(0, 0), Max: P(10, 10)}.Expand(1)
	want := Rect{Min: P(-1, -1), Max: P(11, 11)}
	if got != want {
		t.Errorf("Expand(1) = %+v, want %+v", got, want)
	}
}

func TestBoundOf(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want Rect
	}{
		{"empty", nil, Rect{}},
		{"single", []Point{P(3, 4)}, Rect{Min: P(3, 4), Max: P(3, 4)}},
		{"mixed", []Point{P(5, -2), P(-1, 7), P(3, 3)}, Rect{Min: P(-1, -2), Max: P(5, 7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boundOf(tt.pts); got != tt.want {
				t.Errorf("boundOf = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPointOps(t *testing.T) {
	if got := P(1, 2).Add(P(3, 4)); got != P(4, 6) {
		t.Errorf("Add = %+v, want (4,6)", got)
	}
	if got := P(3, 4).Sub(P(1, 2)); got != P(2, 2) {
		t.Errorf("Sub = %+v, want (2,2)", got)
	}
	if got := P(0, 0).Mid(P(10, 4)); got != P(5, 2) {
		t.Errorf("Mid = %+v, want (5,2)", got)
	}
	if got := P(0, 0).Lerp(P(10, 20), 0.25); got != P(2.5, 5) {
		t.Errorf("Lerp = %+v, want (2.5,5)", got)
	}
	if got := P(3, 4).Length(); !approx(got, 5) {
		t.Errorf("Length = %v, want 5", got)
	}
}
