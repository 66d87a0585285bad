package service

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var (
	ErrAssetRootMissing     = errors.New("asset root directory does not exist")
	ErrEntryDocumentMissing = errors.New("entry document does not exist")
)

// CheckAssetRoot fails with ErrAssetRootMissing unless dir is an existing directory
func CheckAssetRoot(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrAssetRootMissing, dir)
		}
		return fmt.Errorf("stat asset root %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrAssetRootMissing, dir)
	}
	return nil
}

// EntryDocument caches the SPA shell (index.html) served for every route
// that does not name a static file.
type EntryDocument struct {
	fs   afero.Fs
	name string
	log  *logrus.Logger

	mu      sync.RWMutex
	content []byte
	modTime time.Time
}

// NewEntryDocument loads name from the asset filesystem. A missing document
// is ErrEntryDocumentMissing.
func NewEntryDocument(fs afero.Fs, name string, log *logrus.Logger) (*EntryDocument, error) {
	doc := &EntryDocument{fs: fs, name: name, log: log}
	if err := doc.Reload(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Reload re-reads the document. On failure the previous content is kept.
func (d *EntryDocument) Reload() error {
	info, err := d.fs.Stat(d.name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrEntryDocumentMissing, d.name)
		}
		return fmt.Errorf("stat entry document %s: %w", d.name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrEntryDocumentMissing, d.name)
	}

	content, err := afero.ReadFile(d.fs, d.name)
	if err != nil {
		return fmt.Errorf("read entry document %s: %w", d.name, err)
	}

	d.mu.Lock()
	d.content = content
	d.modTime = info.ModTime()
	d.mu.Unlock()

	d.log.Debugf("Entry document %s loaded (%d bytes)", d.name, len(content))
	return nil
}

// Content returns the cached document and its modification time.
// The slice must not be modified.
func (d *EntryDocument) Content() ([]byte, time.Time) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content, d.modTime
}

func (d *EntryDocument) Name() string {
	return d.name
}
