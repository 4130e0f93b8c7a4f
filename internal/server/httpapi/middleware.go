package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// withAuth verifies the bearer token and stores the user id in the request
// context. Requests without a valid token never reach the handler.
func (s *HTTPServer) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFrom returns the authenticated user id placed by withAuth.
func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

var (
	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eventplanner_http_requests_in_flight",
		Help: "Number of HTTP requests currently being served.",
	})
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventplanner_http_requests_total",
		Help: "Total HTTP requests by method and status code.",
	}, []string{"method", "code"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *HTTPServer) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}
