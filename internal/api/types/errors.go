package types

import appErr "github.com/devroster/engine/pkg/errors"

// APIError is the coded error carried in an APIResponse.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FromAppError converts err into an APIError, nil for a nil err.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	return &APIError{Code: string(appErr.CodeOf(err)), Message: appErr.MessageOf(err)}
}

// NewErrorResponse builds the {status, message} body for err.
func NewErrorResponse(status int, err error) ErrorResponse {
	return ErrorResponse{Status: status, Message: appErr.MessageOf(err)}
}
