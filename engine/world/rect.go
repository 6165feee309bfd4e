package world

import "github.com/nathoo/deadgrid/types"

// Center returns the integer center of r.
func Center(r types.Rect) types.Point {
	return types.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects is an inclusive-bound rectangle overlap test.
func Intersects(a, b types.Rect) bool {
	return a.X1 <= b.X2 && a.X2 >= b.X1 && a.Y1 <= b.Y2 && a.Y2 >= b.Y1
}

// Contains reports whether (x, y) lies within r, bounds inclusive.
func Contains(r types.Rect, x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Valid reports whether r has x1 < x2 and y1 < y2.
func Valid(r types.Rect) bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

func extents(r types.Rect) (w, h int) {
	return r.X2 - r.X1, r.Y2 - r.Y1
}
