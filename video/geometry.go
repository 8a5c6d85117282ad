package video

import "github.com/veandco/go-sdl2/sdl"

// Point is an integer position.
type Point struct {
	X, Y int32
}

// FPoint is a floating point position.
type FPoint struct {
	X, Y float32
}

// Area is a width and height.
type Area struct {
	Width, Height int32
}

// Rect is an integer rectangle.
type Rect struct {
	X, Y, Width, Height int32
}

// FRect is a floating point rectangle.
type FRect struct {
	X, Y, Width, Height float32
}

func (p Point) native() sdl.Point   { return sdl.Point{X: p.X, Y: p.Y} }
func (p FPoint) native() sdl.FPoint { return sdl.FPoint{X: p.X, Y: p.Y} }

func (r Rect) native() sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

func (r FRect) native() sdl.FRect {
	return sdl.FRect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

func rectFrom(r sdl.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// nativeRect converts an optional rectangle; nil means "the whole target" to SDL.
func nativeRect(r *Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	n := r.native()
	return &n
}

func nativeFRect(r *FRect) *sdl.FRect {
	if r == nil {
		return nil
	}
	n := r.native()
	return &n
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Area {
	return Area{Width: r.Width, Height: r.Height}
}

// MaxX is the x coordinate of the right edge.
func (r Rect) MaxX() int32 { return r.X + r.Width }

// MaxY is the y coordinate of the bottom edge.
func (r Rect) MaxY() int32 { return r.Y + r.Height }

// Center returns the rectangle's center point, rounded down.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.MaxX() && p.Y < r.MaxY()
}

// Intersects reports whether the rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	a, b := r.native(), other.native()
	return a.HasIntersection(&b)
}

// Intersection returns the overlapping area and whether there was one.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	a, b := r.native(), other.native()
	i, ok := a.Intersect(&b)
	return rectFrom(i), ok
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	a, b := r.native(), other.native()
	return rectFrom(a.Union(&b))
}

// Float converts to a floating point rectangle.
func (r Rect) Float() FRect {
	return FRect{X: float32(r.X), Y: float32(r.Y), Width: float32(r.Width), Height: float32(r.Height)}
}
