package video

import "testing"

func TestRectQueries(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if !r.Contains(Point{X: 9, Y: 9}) || r.Contains(Point{X: 10, Y: 0}) {
		t.Fatalf("Contains must treat the right and bottom edges as exclusive")
	}
	if r.Center() != (Point{X: 5, Y: 5}) {
		t.Fatalf("Center = %v", r.Center())
	}
	if (Rect{Width: 0, Height: 4}).Empty() != true {
		t.Fatalf("a zero width rect is empty")
	}

	other := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	if !r.Intersects(other) {
		t.Fatalf("rects should intersect")
	}
	i, ok := r.Intersection(other)
	if !ok || i != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Fatalf("Intersection = %v, %v", i, ok)
	}
	if u := r.Union(other); u != (Rect{X: 0, Y: 0, Width: 15, Height: 15}) {
		t.Fatalf("Union = %v", u)
	}
	if _, ok := r.Intersection(Rect{X: 20, Y: 20, Width: 1, Height: 1}); ok {
		t.Fatalf("disjoint rects have no intersection")
	}
}

func TestNativeRectNil(t *testing.T) {
	if nativeRect(nil) != nil || nativeFRect(nil) != nil {
		t.Fatalf("nil rects must stay nil so SDL treats them as the whole target")
	}
}
