// Package backend is the seam for external quantum-computation backends.
//
// The planning core never depends on this package: it exists so callers can
// route circuits to a real device or simulator adapter without touching the
// planner. The only implementation shipped is NullBackend, a no-op suitable
// for tests and offline runs; the well-known kinds (qiskit, cirq, braket)
// are reserved names that resolve to ErrBackendUnavailable until an adapter
// is registered for them out of tree.
package backend

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for backend resolution.
var (
	// ErrUnknownBackend indicates a kind with no reserved or registered name.
	ErrUnknownBackend = errors.New("backend: unknown backend kind")

	// ErrBackendUnavailable indicates a reserved kind with no adapter in
	// this build.
	ErrBackendUnavailable = errors.New("backend: backend not available in this build")
)

// Backend is the minimal contract a quantum execution target must satisfy.
// Implementations must be side-effect-safe and must not leak secrets in
// their results.
type Backend interface {
	// Name identifies the backend in results and logs.
	Name() string

	// Transpile rewrites a circuit for the target device.
	Transpile(ctx context.Context, circuit any) (any, error)

	// Run executes a circuit for the given number of shots.
	Run(ctx context.Context, circuit any, shots int) (map[string]any, error)
}

// NullBackend is a no-op Backend for tests and offline simulation.
type NullBackend struct{}

// Name implements Backend.
func (NullBackend) Name() string { return "null-backend" }

// Transpile implements Backend; the circuit passes through unchanged.
func (NullBackend) Transpile(_ context.Context, circuit any) (any, error) {
	return circuit, nil
}

// Run implements Backend; it reports the requested shot count and a noop
// result without executing anything.
func (b NullBackend) Run(_ context.Context, _ any, shots int) (map[string]any, error) {
	return map[string]any{
		"backend": b.Name(),
		"shots":   shots,
		"result":  "noop",
	}, nil
}

// reserved names that a future adapter may claim.
var reserved = map[string]struct{}{
	"qiskit": {},
	"cirq":   {},
	"braket": {},
}

// Open resolves a backend kind. "null" and "noop" yield a NullBackend;
// reserved kinds yield ErrBackendUnavailable; anything else yields
// ErrUnknownBackend.
func Open(kind string) (Backend, error) {
	switch kind {
	case "null", "noop":
		return NullBackend{}, nil
	}
	if _, ok := reserved[kind]; ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, kind)
}
