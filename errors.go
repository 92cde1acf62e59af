// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dim

import (
	"errors"
	"fmt"

	"github.com/mikecarlton/dim/dimension"
)

var (
	// ErrIncommensurable is matched by every IncommensurableError.
	ErrIncommensurable = errors.New("dim: incommensurable units")

	// ErrRootNotRepresentable is returned by Root when an exponent is not divisible.
	ErrRootNotRepresentable = dimension.ErrRootNotRepresentable
)

// IncommensurableError reports an operation on quantities of different
// dimension (or system).
type IncommensurableError struct {
	Op       string
	Observed DynamicUnit
	Expected DynamicUnit
}

func (e *IncommensurableError) Error() string {
	return fmt.Sprintf("dim: %s: unit dimensions (%s) should be %s",
		e.Op, describe(e.Observed), describe(e.Expected))
}

func (e *IncommensurableError) Unwrap() error {
	return ErrIncommensurable
}

func describe(u DynamicUnit) string {
	if s := u.String(); s != "" {
		return s
	}
	return "dimensionless"
}

func incommensurable(op string, observed, expected DynamicUnit) error {
	return &IncommensurableError{Op: op, Observed: observed, Expected: expected}
}
