package server

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"
)

const devWatcherInterval = 500 * time.Millisecond

// startDevWatcher polls the on-disk templates and static files and notifies
// reload subscribers whenever the directory fingerprint changes. Only run in
// development.
func startDevWatcher(root string, notifier *reloadNotifier) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// Final notification on shutdown so open SSE connections exit instead
		// of hanging.
		defer notifier.Notify()

		lastFingerprint, err := directoryFingerprint(root)
		if err != nil {
			slog.Error("dev watcher failed to read directory", slog.String("root", root), slog.Any("err", err))
		}

		ticker := time.NewTicker(devWatcherInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fp, err := directoryFingerprint(root)
				if err != nil {
					slog.Error("dev watcher failed to scan directory", slog.String("root", root), slog.Any("err", err))
					continue
				}

				if fp != lastFingerprint {
					lastFingerprint = fp
					notifier.Notify()
				}
			}
		}
	}()

	return cancel
}

// directoryFingerprint hashes relative path, size, and mtime of every file so
// changes are detected without reading file contents.
func directoryFingerprint(root string) (string, error) {
	hasher := sha1.New()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		relative, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintf(hasher, "%s:%d:%d;", relative, info.ModTime().UnixNano(), info.Size()); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
