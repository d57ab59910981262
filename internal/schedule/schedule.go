// Package schedule replays formatted subtitle entries against the wall clock,
// rewriting an output sink as each entry starts and ends.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/mgpai22/subcue/internal/logging"
	"github.com/mgpai22/subcue/internal/sink"
	"github.com/mgpai22/subcue/internal/subtitle"
)

var ErrSinkWrite = errors.New("sink write failed")

// Sink receives the current display content. Every write replaces the
// previous one.
type Sink interface {
	Write(text string) error
}

// SinkError wraps a failed sink write. It is fatal for the run.
type SinkError struct {
	Sequence string
	Err      error
}

func (e *SinkError) Error() string {
	if e.Sequence == "" {
		return fmt.Sprintf("%s: %v", ErrSinkWrite, e.Err)
	}
	return fmt.Sprintf("%s (sequence %q): %v", ErrSinkWrite, e.Sequence, e.Err)
}

func (e *SinkError) Unwrap() []error {
	return []error{ErrSinkWrite, e.Err}
}

// summary of a finished run
type Stats struct {
	Entries int
	Elapsed time.Duration
}

type Scheduler struct {
	sink   Sink
	sleep  func(time.Duration)
	now    func() time.Time
	logger *logging.Logger
}

type Option func(*Scheduler)

// replaces time.Sleep, used by tests to drive a virtual clock
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Scheduler) {
		s.sleep = sleep
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

func New(out Sink, opts ...Option) *Scheduler {
	s := &Scheduler{
		sink:   out,
		sleep:  time.Sleep,
		now:    time.Now,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WaitBefore is the delay before an entry starting at start is shown. The
// first entry waits its full offset, later ones wait for the gap since the
// previous end, clamped at zero for overlapping or unordered entries.
func WaitBefore(prevEnd time.Duration, first bool, start time.Duration) time.Duration {
	if first {
		return max(0, start)
	}
	return max(0, start-prevEnd)
}

// carried across iterations of one run
type timeline struct {
	prevEnd time.Duration
	started bool
}

// Run presents each entry of seq in order. Sleeps are never interrupted;
// ctx is only checked between steps. The sink is blanked when the run ends,
// including after cancellation.
func (s *Scheduler) Run(
	ctx context.Context,
	seq iter.Seq[subtitle.FormattedEntry],
) (Stats, error) {
	var (
		tl    timeline
		stats Stats
	)
	began := s.now()

	for entry := range seq {
		if err := ctx.Err(); err != nil {
			return s.finish(stats, began, err)
		}

		wait := WaitBefore(tl.prevEnd, !tl.started, entry.Start)
		if tl.started && wait > 0 {
			if err := s.write(entry.Sequence, sink.Blank); err != nil {
				return stats, err
			}
		}

		s.logger.Debugw("Waiting",
			"sequence", entry.Sequence,
			"wait", wait.String(),
		)
		s.sleep(wait)

		if err := s.write(entry.Sequence, entry.Text); err != nil {
			return stats, err
		}

		s.sleep(max(0, entry.Duration()))

		tl.prevEnd = entry.End
		tl.started = true
		stats.Entries++
	}

	return s.finish(stats, began, nil)
}

func (s *Scheduler) finish(stats Stats, began time.Time, cause error) (Stats, error) {
	if err := s.write("", sink.Blank); err != nil {
		return stats, err
	}
	stats.Elapsed = s.now().Sub(began)
	return stats, cause
}

func (s *Scheduler) write(sequence, text string) error {
	if text == sink.Blank {
		s.logger.Debugw("Clearing the display")
	} else {
		s.logger.Debugw("Displaying text",
			"sequence", sequence,
			"text", text,
		)
	}

	if err := s.sink.Write(text); err != nil {
		return &SinkError{Sequence: sequence, Err: err}
	}
	return nil
}
