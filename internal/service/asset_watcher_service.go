package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// AssetWatcher reloads the entry document whenever a new build replaces it.
// The directory is watched rather than the file because bundlers usually
// swap files through rename.
type AssetWatcher struct {
	dir     string
	entry   *EntryDocument
	log     *logrus.Logger
	watcher *fsnotify.Watcher
}

func NewAssetWatcher(dir string, entry *EntryDocument, log *logrus.Logger) (*AssetWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create asset watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch asset root %s: %w", dir, err)
	}

	return &AssetWatcher{
		dir:     dir,
		entry:   entry,
		log:     log,
		watcher: watcher,
	}, nil
}

// Run blocks until ctx is done, then closes the underlying watcher
func (w *AssetWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.log.Infof("Watching %s for changes to %s", w.dir, w.entry.Name())

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.entry.Name()) || event.Op&reloadOps == 0 {
				continue
			}
			if err := w.entry.Reload(); err != nil {
				// rename-based replacement briefly removes the file; the
				// follow-up Create event reloads it
				w.log.Warnf("Failed to reload entry document after %s: %+v", event.Op, err)
				continue
			}
			w.log.Infof("Entry document reloaded after %s", event.Op)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnf("Asset watcher error: %+v", err)
		}
	}
}
