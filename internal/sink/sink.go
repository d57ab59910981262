package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

// written to clear the display
const Blank = " "

// File is an output sink backed by a single file. Each write replaces the
// whole content, so a polling reader sees either the old or the new text.
type File struct {
	path string
}

// NewFile checks that path can be written and returns a sink for it.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("sink path is empty")
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("sink directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sink directory %s is not a directory", dir)
	}
	return &File{path: path}, nil
}

func (f *File) Path() string {
	return f.path
}

// replaces the sink content with text
func (f *File) Write(text string) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".subcue-sink-*")
	if err != nil {
		return fmt.Errorf("create temp sink: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write sink: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close sink: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod sink: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace sink: %w", err)
	}
	return nil
}

func (f *File) Clear() error {
	return f.Write(Blank)
}
