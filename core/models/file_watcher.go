package models

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher holds the fsnotify state for watch mode. The watched set is
// a handful of specific files (build model, config); fsnotify watches
// their parent directories because editors replace files on save.
type FileWatcher struct {
	Watcher       *fsnotify.Watcher
	WatchFiles    []string
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	OnStart       func() error
	OnChange      func() error
}

func NewFileWatcher(watchFiles []string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	cleaned := make([]string, 0, len(watchFiles))
	for _, f := range watchFiles {
		cleaned = append(cleaned, filepath.Clean(f))
	}

	return &FileWatcher{
		Watcher:    watcher,
		WatchFiles: cleaned,
		OnStart:    func() error { return fmt.Errorf("OnStart not set") },
		OnChange:   func() error { return fmt.Errorf("OnChange not set") },
	}, nil
}

func (fw *FileWatcher) AddOnStartFunc(onStart func() error) {
	fw.OnStart = onStart
}

func (fw *FileWatcher) AddOnChangeFunc(onChange func() error) {
	fw.OnChange = onChange
}

// IsWatched reports whether an event path is one of the watched files.
func (fw *FileWatcher) IsWatched(path string) bool {
	path = filepath.Clean(path)
	for _, f := range fw.WatchFiles {
		if path == f {
			return true
		}
	}
	return false
}
