package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/doodlesbykumbi/eczemahub/pkg/config"
	"github.com/doodlesbykumbi/eczemahub/pkg/store/memory"
)

// watchSnapshotTrigger watches the configured trigger file and writes
// an on-demand snapshot whenever it is touched. Operators use this to
// take a snapshot of a running server without restarting it:
//
//	touch /run/eczemahub/snapshot-trigger
//
// The returned stop function closes the watcher. When no trigger path
// is configured the watcher is skipped entirely.
func watchSnapshotTrigger(resources *memory.Store, cfg *config.Config) (func(), error) {
	if cfg.SnapshotTriggerPath == "" {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// The trigger file has to exist before fsnotify will accept it.
	if _, err := os.Stat(cfg.SnapshotTriggerPath); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.SnapshotTriggerPath, nil, 0o644); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to create trigger file %s: %w", cfg.SnapshotTriggerPath, err)
		}
	}

	if err := watcher.Add(cfg.SnapshotTriggerPath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", cfg.SnapshotTriggerPath, err)
	}

	log.Printf("Watching %s for snapshot triggers\n", cfg.SnapshotTriggerPath)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create ||
					event.Op&fsnotify.Chmod == fsnotify.Chmod {
					log.Printf("[%s] Snapshot trigger touched, saving...\n", time.Now().Format(time.RFC3339))
					if err := saveSnapshot(resources, cfg.SnapshotPath); err != nil {
						fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
					} else {
						log.Printf("Snapshot saved to %s\n", cfg.SnapshotPath)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
