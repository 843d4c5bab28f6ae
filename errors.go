package taylor

import "errors"

// Errors reported by the expansion engine.
var (
	// ErrExpansionPoint is returned when a series expansion is requested
	// about a positive or negative infinity.
	ErrExpansionPoint = errors.New("expansion point is infinite")
	// ErrDivergentExpansion is returned when the derivative fallback
	// produces an expansion that still contains the original expression
	// outside a derivative marker; re-expanding it would never terminate.
	ErrDivergentExpansion = errors.New("expansion does not resolve its input")
	// ErrNegativeOrder is returned for an expansion spec with order < 0.
	ErrNegativeOrder = errors.New("expansion order is negative")
)
