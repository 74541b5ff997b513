package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
)

// APIResponse is the envelope every API endpoint answers with
type APIResponse struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// MessageData is the payload of operations that only report a message and a result
type MessageData struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondData wraps data in a success envelope
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, APIResponse{Success: true, Data: data})
}

// respondError sends a failed envelope
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, APIResponse{Success: false, Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."

	ErrMsgUserNotFoundError         = "User not found"
	ErrMsgItemNotFoundError         = "Item not found"
	ErrMsgStickerNotFoundError      = "Sticker not found"
	ErrMsgBoosterNotFoundError      = "Booster not found or already opened"
	ErrMsgTokenNotFoundError        = "Token not found or not owned by user"
	ErrMsgQuestNotFoundError        = "Quest not found"
	ErrMsgInsufficientQuantityError = "Not enough stickers"
	ErrMsgInsufficientFundsError    = "Insufficient scrap balance"
	ErrMsgQuestCompletedError       = "Quest already completed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything that is not a domain error is reported as a generic server error.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError

	// NotFound class
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusNotFound, ErrMsgTokenNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrBoosterNotFound):
		return http.StatusNotFound, ErrMsgBoosterNotFoundError
	case errors.Is(err, domain.ErrStickerNotFound):
		return http.StatusNotFound, ErrMsgStickerNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusNotFound, ErrMsgInsufficientQuantityError

	// DomainConflict class
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrQuestAlreadyCompleted):
		return http.StatusBadRequest, ErrMsgQuestCompletedError

	// The wrapped detail is written for the caller
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
