package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/eventplanner/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// errorDetail strips the sentinel prefix so the client sees only the
// human-readable part, e.g. "validation error: title is required"
// becomes "title is required".
func errorDetail(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{common.ErrorValidation, common.ErrorAlreadyExists, common.ErrorPermissionDenied, common.ErrorUnauthorized} {
		if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

// writeError maps service errors onto the API status codes. Anything
// unrecognized is logged and reported as a 500 without leaking internals.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorAlreadyExists):
		writeDetail(w, http.StatusBadRequest, errorDetail(err))
	case errors.Is(err, common.ErrorUnauthorized):
		writeDetail(w, http.StatusUnauthorized, errorDetail(err))
	case errors.Is(err, common.ErrorPermissionDenied):
		writeDetail(w, http.StatusForbidden, errorDetail(err))
	case errors.Is(err, common.ErrorNotFound):
		writeDetail(w, http.StatusNotFound, "Not found")
	default:
		s.logger.Error(r.Context(), err.Error())
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
