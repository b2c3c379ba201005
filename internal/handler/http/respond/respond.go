// Package respond provides utilities for sending HTTP responses in the
// `{code, message, ...}` envelope used across the API. It includes error
// handling with sanitization to prevent leaking internal detail.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blog-api/internal/domain/entity"
)

// Envelope is the standard response wrapper. The code field mirrors the HTTP
// status code.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a JSON response with the given status code and body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; nothing left but to log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// OK writes a 200 envelope with the given payload.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Code: http.StatusOK, Message: "success", Data: data})
}

// Created writes a 201 envelope with the given payload.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Envelope{Code: http.StatusCreated, Message: "success", Data: data})
}

// Error writes an error envelope with the given status code and message.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Envelope{Code: code, Message: message})
}

// SafeError sanitizes errors before returning them to callers. Validation
// errors carry their own message and answer 400; everything else is logged
// server-side and reported as a generic internal error, never verbatim.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		Error(w, http.StatusBadRequest, vErr.Message)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	Error(w, code, "internal server error")
}
