package subtitle

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTimecode = errors.New("malformed timecode")
	ErrMalformedBlock    = errors.New("malformed block")
	ErrSourceRead        = errors.New("cannot read track")
)

// TimecodeError reports a timestamp that does not match HH:MM:SS,mmm.
type TimecodeError struct {
	Input  string
	Reason string
}

func (e *TimecodeError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedTimecode, e.Input, e.Reason)
}

func (e *TimecodeError) Unwrap() error {
	return ErrMalformedTimecode
}

// BlockError reports a block that was skipped. Index is the 1-based position
// of the block in the track.
type BlockError struct {
	Index    int
	Sequence string
	Reason   string
	Err      error
}

func (e *BlockError) Error() string {
	msg := fmt.Sprintf("%s #%d", ErrMalformedBlock, e.Index)
	if e.Sequence != "" {
		msg += fmt.Sprintf(" (sequence %q)", e.Sequence)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BlockError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedBlock, e.Err}
	}
	return []error{ErrMalformedBlock}
}
