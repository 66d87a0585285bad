package handler

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path"

	"turnos-web/internal/service"
	"turnos-web/pkg/response"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// SPAHandler serves files from the built client and falls back to the entry
// document for every other path, so client-side routes survive a reload.
type SPAHandler struct {
	fs    afero.Fs
	entry *service.EntryDocument
	log   *logrus.Logger
}

// NewSPAHandler expects fs to be rooted at the asset directory
func NewSPAHandler(fs afero.Fs, entry *service.EntryDocument, log *logrus.Logger) *SPAHandler {
	return &SPAHandler{
		fs:    fs,
		entry: entry,
		log:   log,
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		response.MethodNotAllowed(w)
		return
	}

	// Cleaning a rooted path drops every ".." segment that would climb
	// above the asset directory.
	name := path.Clean("/" + r.URL.Path)

	if name != "/" && name != h.entry.Name() {
		served, err := h.serveFile(w, r, name)
		if err != nil {
			h.log.Errorf("Failed to serve asset %s: %+v", name, err)
			response.InternalServerError(w, "")
			return
		}
		if served {
			return
		}
	}

	h.serveEntry(w, r)
}

// serveFile reports false when name is not a regular file
func (h *SPAHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) (bool, error) {
	info, err := h.fs.Stat(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	file, err := h.fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer file.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		detected, err := mimetype.DetectReader(file)
		if err != nil {
			return false, err
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return false, err
		}
		contentType = detected.String()
	}
	w.Header().Set("Content-Type", contentType)

	http.ServeContent(w, r, name, info.ModTime(), file)
	return true, nil
}

func (h *SPAHandler) serveEntry(w http.ResponseWriter, r *http.Request) {
	content, modTime := h.entry.Content()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, h.entry.Name(), modTime, bytes.NewReader(content))
}
