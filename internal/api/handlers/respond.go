package handlers

import (
	"encoding/json"
	"net/http"

	mw "github.com/devroster/engine/internal/api/middleware"
	"github.com/devroster/engine/internal/api/types"
	appErr "github.com/devroster/engine/pkg/errors"
	"github.com/devroster/engine/pkg/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status and writes the {status, message} body.
// notFoundStatus differs per endpoint: lookups answer 404, mutations 400.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFoundStatus int) {
	status := http.StatusInternalServerError
	switch appErr.CodeOf(err) {
	case appErr.CodeNotFound:
		status = notFoundStatus
	case appErr.CodeAlreadyExists, appErr.CodeInvalid:
		status = http.StatusBadRequest
	case appErr.CodeUnauthorized:
		status = http.StatusUnauthorized
	case appErr.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeJSON(w, status, types.NewErrorResponse(status, err))
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Status: status, Message: msg})
}

// logMutation records a successful write with the token subject, empty when auth is off.
func logMutation(r *http.Request, action string, id int) {
	logger.L().Info(action,
		zap.Int("id", id),
		zap.String("subject", mw.GetSubject(r.Context())),
		zap.String("request_id", mw.GetRequestID(r.Context())),
	)
}
