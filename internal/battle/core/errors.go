package core

import (
	"errors"
	"fmt"
)

// The battle core distinguishes two error classes. Invariant violations mean
// the calling layer let an illegal action through its legality gating; they
// are fatal for the battle. Unsupported errors mean an ability AST variant
// has no implementation yet; callers can treat them as "missing feature"
// rather than "your bug".
var (
	ErrInvariant   = errors.New("invariant violation")
	ErrUnsupported = errors.New("unsupported")
)

// Invariantf builds an invariant violation error. Tests and callers match it
// with errors.Is(err, ErrInvariant).
func Invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// Unsupportedf builds a typed "not implemented" error for an ability AST
// variant the engine does not handle yet.
func Unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}
