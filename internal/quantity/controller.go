// Package quantity implements the small state machine governing how a
// user-entered purchase quantity is accepted, clamped and committed.
package quantity

import (
	"math"
	"strconv"
	"strings"
)

// State of the quantity input.
type State int

const (
	// Stepper shows the committed value with increment/decrement controls.
	Stepper State = iota
	// Editing accepts free-text numeric entry until commit.
	Editing
)

// Controller tracks one quantity input per UI session. The committed
// quantity is always a positive integer; while editing, a zero sentinel
// permits the field to be visually empty.
type Controller struct {
	state    State
	quantity int
	draft    int
}

// NewController returns a controller in the Stepper state with quantity 1.
func NewController() *Controller {
	return &Controller{state: Stepper, quantity: 1}
}

// State returns the current input state.
func (c *Controller) State() State {
	return c.state
}

// Quantity returns the last committed quantity.
func (c *Controller) Quantity() int {
	return c.quantity
}

// Increment raises the quantity by one. Only valid in the Stepper state; the
// quantity is unbounded apart from an integer-overflow guard.
func (c *Controller) Increment() {
	if c.state != Stepper || c.quantity == math.MaxInt {
		return
	}
	c.quantity++
}

// Decrement lowers the quantity by one, floored at 1. Only valid in the
// Stepper state.
func (c *Controller) Decrement() {
	if c.state != Stepper || c.quantity <= 1 {
		return
	}
	c.quantity--
}

// CanDecrement reports whether the decrement control is enabled.
func (c *Controller) CanDecrement() bool {
	return c.state == Stepper && c.quantity > 1
}

// BeginEdit switches to free-text entry, seeding the draft with the
// committed quantity.
func (c *Controller) BeginEdit() {
	if c.state != Stepper {
		return
	}
	c.state = Editing
	c.draft = c.quantity
}

// SetInput replaces the draft with the parsed raw text. An empty or
// unparsable entry maps to the zero sentinel so the field may stay empty
// while editing; the sentinel never survives a commit.
func (c *Controller) SetInput(raw string) {
	if c.state != Editing {
		return
	}
	c.draft = parse(raw)
}

// Draft returns the in-progress value, meaningful only while editing.
func (c *Controller) Draft() int {
	return c.draft
}

// Commit leaves the Editing state, coercing any draft below 1 to 1, and
// returns the committed quantity. Callers re-quote prices synchronously with
// the returned value.
func (c *Controller) Commit() int {
	if c.state == Editing {
		c.quantity = clamp(c.draft)
		c.state = Stepper
	}
	return c.quantity
}

// Normalize applies the commit coercion to a raw text value in one step.
// Used by HTTP handlers committing a submitted quantity field.
func Normalize(raw string) int {
	return clamp(parse(raw))
}

func parse(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
