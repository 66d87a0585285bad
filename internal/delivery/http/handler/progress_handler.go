package handler

import (
	"fmt"
	"net/http"

	"turnos-web/internal/usecase"
	"turnos-web/pkg/response"

	"github.com/sirupsen/logrus"
)

// ProgressHandler streams simulated loading progress as server-sent events
type ProgressHandler struct {
	componentUsecase usecase.ComponentUsecase
	log              *logrus.Logger
}

func NewProgressHandler(componentUsecase usecase.ComponentUsecase, log *logrus.Logger) *ProgressHandler {
	return &ProgressHandler{
		componentUsecase: componentUsecase,
		log:              log,
	}
}

// Stream writes one "progress" event per value and returns when the source
// reaches the maximum or the client disconnects.
func (h *ProgressHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates := h.componentUsecase.ProgressSource().Updates(r.Context())
	for value := range updates {
		if _, err := fmt.Fprintf(w, "event: progress\ndata: %d\n\n", value); err != nil {
			h.log.Debugf("Progress stream closed by client: %+v", err)
			return
		}
		flusher.Flush()
	}
}
