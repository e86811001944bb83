package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid constructed with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Every cell holds the
// zero value of T.
func NewGrid[T any](w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidSize)
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns a pointer to the cell at (x, y). Coordinates must be in bounds.
func (g *Grid[T]) At(x, y int) *T { return &g.data[y*g.W+x] }

// Set overwrites the cell at (x, y) when it is in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[y*g.W+x] = v
	return true
}

// Swap exchanges the values stored at two linear indices.
func (g *Grid[T]) Swap(i, j int) {
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
