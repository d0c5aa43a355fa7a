package api

import "github.com/sarchlab/mvprune/instr"

// Function is one compiled function as exposed by a host compiler.
type Function interface {
	// Name returns the display name, including any clone suffix.
	Name() string

	// External reports functions that are declared but have no body in this
	// unit.
	External() bool

	// HasCloneMarker reports whether the host marks the function as having
	// target-specific variants.
	HasCloneMarker() bool

	// Blocks returns the basic blocks in the host's traversal order.
	Blocks() []instr.Block
}

// Unit is a source of functions in compilation order.
type Unit interface {
	Functions() []Function
}
