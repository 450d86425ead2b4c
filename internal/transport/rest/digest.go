package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
)

// TriggerHTTP names HTTP-triggered digest runs in logs and metrics.
const TriggerHTTP = "http"

type digestSender interface {
	Send(ctx context.Context, trigger string) (digest.Digest, error)
}

// DigestHandler triggers a digest send.
type DigestHandler struct {
	digest digestSender
	log    *slog.Logger
}

// NewDigestHandler creates a DigestHandler.
func NewDigestHandler(log *slog.Logger, d digestSender) *DigestHandler {
	return &DigestHandler{digest: d, log: log.With("handler", "digest")}
}

// DigestResponse reports the outcome of a triggered digest.
type DigestResponse struct {
	Status      string         `json:"status"`
	Empty       bool           `json:"empty"`
	Counts      map[string]int `json:"counts"`
	Focus       []string       `json:"focus,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Send builds and delivers the digest.
// GET|POST /digest
func (h *DigestHandler) Send(w http.ResponseWriter, r *http.Request) {
	d, err := h.digest.Send(r.Context(), TriggerHTTP)
	if err != nil {
		h.log.ErrorContext(r.Context(), "digest trigger failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "digest failed")
		return
	}

	counts := make(map[string]int, len(d.Sections))
	for _, sec := range d.Sections {
		counts[sec.Category.String()] = sec.Total
	}
	writeJSON(w, http.StatusOK, DigestResponse{
		Status:      "sent",
		Empty:       d.Empty(),
		Counts:      counts,
		Focus:       d.Focus,
		GeneratedAt: d.GeneratedAt,
	})
}
