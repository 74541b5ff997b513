package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/scrapworld/internal/domain"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/token/{tokenID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/token/{tokenID}", "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/token/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/token/{tokenID}", "418"))
	assert.Equal(t, before+2, after)
}

func TestRecordRewards(t *testing.T) {
	xpBefore := testutil.ToFloat64(RewardXPGranted.WithLabelValues(SourceQuest))
	itemsBefore := testutil.ToFloat64(RewardItemsGranted.WithLabelValues(SourceQuest))

	RecordRewards(SourceQuest, domain.RewardBundle{
		XP:    150,
		Scrap: 2.5,
		Items: []domain.RewardItem{{ID: "a", Quantity: 3}, {ID: "b"}},
	})

	assert.Equal(t, xpBefore+150, testutil.ToFloat64(RewardXPGranted.WithLabelValues(SourceQuest)))
	assert.Equal(t, itemsBefore+4, testutil.ToFloat64(RewardItemsGranted.WithLabelValues(SourceQuest)))
}
