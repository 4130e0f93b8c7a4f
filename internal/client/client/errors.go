package client

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/eventplanner/internal/common"
)

// Message turns a client error into the single human-readable line the UI
// shows. Validation errors carry the server's detail text.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrorAuthMissing):
		return "You are not logged in"
	case errors.Is(err, common.ErrorUnauthorized):
		return "Session expired or invalid, please log in again"
	case errors.Is(err, common.ErrorPermissionDenied):
		return "You don't have permission to do that"
	case errors.Is(err, common.ErrorNotFound):
		return "Not found"
	case errors.Is(err, common.ErrorValidation):
		if detail, ok := strings.CutPrefix(err.Error(), common.ErrorValidation.Error()+": "); ok {
			return detail
		}
		return "Invalid request"
	case errors.Is(err, common.ErrorTransport):
		return "Cannot reach the server"
	default:
		return "Unexpected error: " + err.Error()
	}
}
