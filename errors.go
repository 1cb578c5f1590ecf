package rnyquist

import "errors"

var (
	// ErrInvalidOversampling indicates an oversampling factor below the
	// minimum for the calling entry point.
	ErrInvalidOversampling = errors.New("rnyquist: invalid oversampling factor")
	// ErrInvalidDelay indicates a filter delay below one symbol.
	ErrInvalidDelay = errors.New("rnyquist: invalid filter delay")
	// ErrInvalidExcessBandwidth indicates an excess bandwidth outside the
	// range required by the calling entry point.
	ErrInvalidExcessBandwidth = errors.New("rnyquist: invalid excess bandwidth")
	// ErrInvalidFractionalDelay indicates a fractional sample delay outside [-1,1].
	ErrInvalidFractionalDelay = errors.New("rnyquist: invalid fractional delay")
)
