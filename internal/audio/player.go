package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	ffmpegbin "github.com/mgpai22/subcue/internal/ffmpeg"
)

// Player starts audio playback once. Start returns as soon as playback has
// been initiated; the player runs independently afterwards.
type Player interface {
	Start(ctx context.Context, path string) error
	Stop() error
}

// FFplayPlayer plays a file through an ffplay child process with no video
// window.
type FFplayPlayer struct {
	binPath string

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// binPath may be empty to resolve ffplay from the environment
func NewFFplayPlayer(binPath string) *FFplayPlayer {
	return &FFplayPlayer{binPath: binPath}
}

func (p *FFplayPlayer) Start(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("audio file: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return errors.New("playback already started")
	}

	bin := p.binPath
	if bin == "" {
		var err error
		if bin, err = ffmpegbin.FFplayPath(); err != nil {
			return err
		}
	}

	cmd := exec.CommandContext(ctx, bin,
		"-nodisp",
		"-autoexit",
		"-loglevel", "error",
		path,
	)
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffplay: %w", err)
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	p.cmd = cmd
	p.done = done
	return nil
}

// kills playback if it is still running
func (p *FFplayPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil {
		return nil
	}

	select {
	case <-p.done:
		return nil
	default:
	}

	if err := p.cmd.Process.Kill(); err != nil &&
		!errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop ffplay: %w", err)
	}
	<-p.done
	return nil
}

// NopPlayer satisfies Player without producing sound.
type NopPlayer struct{}

func (NopPlayer) Start(context.Context, string) error { return nil }

func (NopPlayer) Stop() error { return nil }
