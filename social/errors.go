// SPDX-License-Identifier: MIT

package social

import (
	"errors"
	"fmt"
)

// Sentinel errors for query validation.
var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("social: graph is nil")

	// ErrInvalidID indicates an account id outside [0, NodeCount()).
	ErrInvalidID = errors.New("social: invalid account id")

	// ErrSamePerson indicates a connection query from an account to itself.
	ErrSamePerson = errors.New("social: same person")
)

// IDError carries the rejected id. It unwraps to ErrInvalidID.
type IDError struct {
	ID        int
	NodeCount int
}

// Error implements the error interface.
func (e *IDError) Error() string {
	if e.NodeCount == 0 {
		return fmt.Sprintf("social: account %d does not exist (network is empty)", e.ID)
	}
	return fmt.Sprintf("social: account %d does not exist (valid ids: 0..%d)", e.ID, e.NodeCount-1)
}

// Unwrap lets errors.Is(err, ErrInvalidID) match.
func (e *IDError) Unwrap() error {
	return ErrInvalidID
}
