package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/pkg/ctxutil"
)

const maxCaptureBody = 64 << 10

type messageHandler interface {
	Handle(ctx context.Context, msg domain.CapturedMessage) (string, error)
}

// CaptureHandler feeds JSON messages through the command interpreter.
type CaptureHandler struct {
	assistant messageHandler
	log       *slog.Logger
	now       func() time.Time
}

// NewCaptureHandler creates a CaptureHandler.
func NewCaptureHandler(log *slog.Logger, assistant messageHandler) *CaptureHandler {
	return &CaptureHandler{
		assistant: assistant,
		log:       log.With("handler", "capture"),
		now:       time.Now,
	}
}

// CaptureRequest is the body of POST /capture. MessageID defaults to a new
// UUID; supply it to make retries idempotent.
type CaptureRequest struct {
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
	ReplyTo        string `json:"reply_to"`
}

// CaptureResponse carries the chat reply. Error is set when the operation
// failed; Reply then holds the text a chat user would have seen.
type CaptureResponse struct {
	MessageID string `json:"message_id"`
	Reply     string `json:"reply"`
	Error     string `json:"error,omitempty"`
}

// Capture handles one message.
// POST /capture
func (h *CaptureHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req CaptureRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCaptureBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var errs []domain.FieldError
	if strings.TrimSpace(req.ConversationID) == "" {
		errs = append(errs, domain.FieldError{Field: "conversation_id", Message: "required"})
	}
	if strings.TrimSpace(req.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(errs) > 0 {
		writeError(w, http.StatusBadRequest, domain.NewValidationErrors(errs).Error())
		return
	}

	if req.MessageID == "" {
		req.MessageID = uuid.NewString()
	}
	msg := domain.CapturedMessage{
		ID:             domain.MessageID(req.MessageID),
		ConversationID: req.ConversationID,
		Text:           req.Text,
		CapturedAt:     h.now().UTC(),
		ReplyTo:        domain.MessageID(req.ReplyTo),
	}

	ctx := ctxutil.WithConversationID(r.Context(), msg.ConversationID)
	reply, err := h.assistant.Handle(ctx, msg)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, CaptureResponse{MessageID: req.MessageID, Reply: reply, Error: err.Error()})
			return
		}
		h.log.ErrorContext(ctx, "handle message failed",
			slog.String("message_id", req.MessageID),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, CaptureResponse{MessageID: req.MessageID, Reply: reply, Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, CaptureResponse{MessageID: req.MessageID, Reply: reply})
}
