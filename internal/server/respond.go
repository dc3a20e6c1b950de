package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/valdigraph/pkg/errors"
)

// errorResponse is the body written for every failed request.
type errorResponse struct {
	Error   bool        `json:"error"`
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to its HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeDuplicateID, errors.ErrCodeUnsupported, errors.ErrCodeInvertNotPermitted:
		return http.StatusConflict
	case errors.ErrCodeOutOfRange, errors.ErrCodeMalformedDocument:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}
	s.respondJSON(w, status, errorResponse{Error: true, Code: code, Message: msg})
}
