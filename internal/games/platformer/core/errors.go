package core

import (
	"errors"
	"fmt"
)

// ErrContract is matched by every ContractError.
var ErrContract = errors.New("contract violation")

// ContractError reports an argument that does not satisfy the entity or
// vector contract: a nil entity, a non-finite vector, a non-positive size or a
// reserved symbol in a parser dictionary.
//
// Constructors return it. Queries panic with it, since a bad argument there is
// a bug in the caller rather than a runtime condition.
type ContractError struct {
	Op     string // Operation that rejected the argument
	Arg    string // Argument name
	Reason string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("platformer: %s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

// Unwrap allows errors.Is(err, ErrContract).
func (e *ContractError) Unwrap() error {
	return ErrContract
}

func contractError(op, arg, reason string) *ContractError {
	return &ContractError{Op: op, Arg: arg, Reason: reason}
}
