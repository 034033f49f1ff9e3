package main

import (
	"fmt"
	"html/template"
)

type Point struct {
	X, Y float64
}

type CursorVariant string

const (
	CursorDefault CursorVariant = "default"
	CursorHover   CursorVariant = "hover"
)

// ParseCursorVariant maps anything unrecognized to CursorDefault.
func ParseCursorVariant(s string) CursorVariant {
	if CursorVariant(s) == CursorHover {
		return CursorHover
	}
	return CursorDefault
}

// MovePointer records viewport coordinates for the cursor follower.
func (p *Portfolio) MovePointer(x, y float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pointer = Point{X: x, Y: y}
}

// SetCursorVariant switches the follower between its default and hover look.
func (p *Portfolio) SetCursorVariant(v CursorVariant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = ParseCursorVariant(string(v))
}

// Pointer returns the last recorded position and cursor variant.
func (p *Portfolio) Pointer() (Point, CursorVariant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pointer, p.cursor
}

// CursorStyle positions the follower element and scales it up on hover.
func (v View) CursorStyle() template.CSS {
	scale := 1.0
	if v.Cursor == CursorHover {
		scale = 1.5
	}
	return template.CSS(fmt.Sprintf(
		"left: %.1fpx; top: %.1fpx; transform: translate(-50%%, -50%%) scale(%g);",
		v.Pointer.X, v.Pointer.Y, scale,
	))
}
