package app

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hazemk/makhzan/internal/storage"
)

const watchDebounce = 250 * time.Millisecond

// watchDataDir watches the data directory and invokes onChange after
// writes to Makhzan record files settle. Events are debounced because a
// single save shows up as several fsnotify events. The returned func
// stops the watcher.
func watchDataDir(dir string, logger *slog.Logger, onChange func()) (func(), error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return

			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !isRecordFile(event.Name) {
					continue
				}
				logger.Debug("data file changed", "path", event.Name, "op", event.Op.String())
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
					fire = timer.C
				} else {
					timer.Reset(watchDebounce)
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Error("data dir watch error", "error", err)

			case <-fire:
				timer = nil
				fire = nil
				logger.Info("reloading from data dir")
				onChange()
			}
		}
	}()

	return func() {
		close(done)
		fsw.Close()
	}, nil
}

// isRecordFile reports whether path names a Makhzan record file.
func isRecordFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, storage.Prefix) && strings.HasSuffix(name, ".json")
}
