package gfx

import "errors"

// ErrCommandTooLarge reports a single draw command with more vertices
// than the batch capacity ceiling. Commands must fit within one flush;
// the batcher never splits a command across two batches.
var ErrCommandTooLarge = errors.New("gfx: draw command exceeds batch capacity")

// ErrNoFrame reports a draw submitted outside Begin/End.
var ErrNoFrame = errors.New("gfx: draw outside of an open frame")

// DeviceError wraps a failure reported by the graphics backend.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string { return "gfx: device " + e.Op + ": " + e.Err.Error() }
func (e *DeviceError) Unwrap() error { return e.Err }
