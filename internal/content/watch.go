package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	reloadDebounce = 100 * time.Millisecond
	// reloadMaxDelay bounds how long a steady stream of writes can hold off
	// a reload.
	reloadMaxDelay = 500 * time.Millisecond
)

// Watch reloads path into store whenever the file changes, until ctx ends.
// A failed reload is logged and the previous feed stays in place.
//
// The parent directory is watched so editors that replace the file by rename
// are still picked up.
func Watch(ctx context.Context, path string, reload func() (Feed, error), store *Store) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("content file path is required")
	}
	if reload == nil {
		return errors.New("reload function is required")
	}
	if store == nil {
		return errors.New("feed store is required")
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve content file %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Printf("close content watcher: %v", err)
		}
	}()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	log.Printf("watching content file path=%s", target)

	debounce := time.NewTimer(reloadDebounce)
	debounce.Stop()
	defer debounce.Stop()
	var deadline time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !affects(event, target) {
				continue
			}
			now := time.Now()
			if deadline.IsZero() {
				deadline = now.Add(reloadMaxDelay)
			}
			debounce.Reset(debounceWait(now, deadline))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("content watcher error: %v", err)
		case <-debounce.C:
			deadline = time.Time{}
			feed, err := reload()
			if err != nil {
				log.Printf("reload content feed path=%s err=%v", target, err)
				continue
			}
			store.Replace(feed)
			log.Printf("reloaded content feed path=%s contenders=%d", target, len(feed.Contenders))
		}
	}
}

// debounceWait returns the quiet period to wait after an event at now,
// clipped so the reload happens no later than deadline.
func debounceWait(now, deadline time.Time) time.Duration {
	wait := min(reloadDebounce, deadline.Sub(now))
	return max(wait, 0)
}

func affects(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}
