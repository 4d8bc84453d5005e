// Package errdefs holds the error kinds shared by the emulator packages.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolExhausted is returned when an address pool has no free entry left.
	ErrPoolExhausted = errors.New("address pool exhausted")
	// ErrDuplicateAddress is returned when a generated hardware address was already issued.
	ErrDuplicateAddress = errors.New("duplicate address")
	// ErrUnresolvedReference is returned when a declared reference does not resolve.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrMalformedDeclaration is returned for declarations violating a structural rule.
	ErrMalformedDeclaration = errors.New("malformed declaration")
	// ErrExternalCommandFailed is returned when an OS or container operation failed.
	ErrExternalCommandFailed = errors.New("external command failed")
	// ErrInvalidPhase is returned when a build step is invoked out of order.
	ErrInvalidPhase = errors.New("invalid build phase")
)

// CommandError describes a failed operation executed on behalf of a node.
type CommandError struct {
	Node string
	Op   string
	Err  error
}

func (e *CommandError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s on node %s: %v", e.Op, e.Node, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (*CommandError) Is(target error) bool {
	return target == ErrExternalCommandFailed
}

// Command wraps err into a CommandError, returning nil for a nil err.
func Command(node, op string, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Node: node, Op: op, Err: err}
}

// Unresolved builds an ErrUnresolvedReference for the given description.
func Unresolved(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnresolvedReference, fmt.Sprintf(format, args...))
}

// Malformed builds an ErrMalformedDeclaration for the given description.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDeclaration, fmt.Sprintf(format, args...))
}
