// Package ui holds the interfaces shared by the terminal views.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}
