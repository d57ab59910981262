package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// a resolved helper binary, looked up once per process
type binary struct {
	name   string
	envVar string

	once sync.Once
	path string
	err  error
}

var (
	ffmpegBin  = &binary{name: "ffmpeg", envVar: "SUBCUE_FFMPEG_PATH"}
	ffprobeBin = &binary{name: "ffprobe", envVar: "SUBCUE_FFPROBE_PATH"}
	ffplayBin  = &binary{name: "ffplay", envVar: "SUBCUE_FFPLAY_PATH"}
)

func (b *binary) resolve() (string, error) {
	b.once.Do(func() {
		b.path, b.err = lookup(b.name, b.envVar)
	})
	return b.path, b.err
}

func lookup(name, envVar string) (string, error) {
	if path := os.Getenv(envVar); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s from %s: %w", name, envVar, err)
		}
		return path, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf(
			"%s not found in PATH (set %s to override): %w",
			name,
			envVar,
			err,
		)
	}
	return path, nil
}

func FFmpegPath() (string, error) {
	return ffmpegBin.resolve()
}

func FFprobePath() (string, error) {
	return ffprobeBin.resolve()
}

func FFplayPath() (string, error) {
	return ffplayBin.resolve()
}
