package vgr

import "errors"

// ErrStackUnderflow is the panic value raised by Restore when it would pop
// the base transform. Restoring past the base is a programmer error, not a
// recoverable condition, so it aborts instead of silently corrupting the
// stack.
var ErrStackUnderflow = errors.New("vgr: restore below base transform")
