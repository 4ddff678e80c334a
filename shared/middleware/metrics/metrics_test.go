package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/threads/{threadId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := httpRequestsTotal.WithLabelValues("GET", "/threads/{threadId}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"thread-1", "thread-2"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", "/threads/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}

func TestDomainCounters(t *testing.T) {
	comments := contentDeletions.WithLabelValues("comment")
	before := testutil.ToFloat64(comments)
	RecordDeletion("comment")
	assert.Equal(t, before+1, testutil.ToFloat64(comments))

	likesBefore := testutil.ToFloat64(likeToggles)
	RecordLikeToggle()
	assert.Equal(t, likesBefore+1, testutil.ToFloat64(likeToggles))
}
