package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reads the whole track at path. Only SubRip tracks are supported.
func ReadTrack(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt", "":
	default:
		return "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrSourceRead, path, err)
	}
	return string(data), nil
}
