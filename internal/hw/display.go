// Package hw emulates the handheld host the shooter prototypes run on:
// a fixed-size display, a pool of hardware sprite objects whose attributes
// are committed once per frame, a button pad read as a snapshot, and a
// vertical-blank signal that paces the frame loop.
//
// Game code treats this package as a black box. Front ends (terminal,
// window, SSH) read the committed object table to draw a frame.
package hw

// Display dimensions in pixels.
const (
	Width  = 240
	Height = 160
)

// MaxObjects is the number of hardware sprite slots.
const MaxObjects = 128

// Priority orders objects against each other; P0 is drawn on top.
type Priority uint8

const (
	P0 Priority = iota
	P1
	P2
	P3
)
