package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/philipparndt/gomeasure/pkg/watcher"
)

// LoadScript reads and parses a replay script file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// WatchScript calls onChange with the freshly parsed script every time the file is written.
// The caller must Close the returned watcher.
func WatchScript(path string, debounce time.Duration, logger *slog.Logger, onChange func(*Script, error)) (*watcher.FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := watcher.NewFileWatcher(debounce, watcher.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		logger.Info("script changed", "file", changedFile)
		onChange(LoadScript(changedFile))
	}

	if err := fw.Watch([]string{path}, callback); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch script: %w", err)
	}

	fw.Start()
	logger.Info("watching script for changes", "file", path)
	return fw, nil
}
