package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/api/games/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/games/:id", "404"))
	for _, id := range []string{"1", "2", "abc"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/games/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/games/:id", "404"))

	assert.Equal(t, float64(3), after-before)
}

func TestRecordCheckout(t *testing.T) {
	before := testutil.ToFloat64(checkouts.WithLabelValues("success"))
	RecordCheckout("success", 0)
	RecordCheckout("success", 20*time.Millisecond)
	assert.Equal(t, float64(2), testutil.ToFloat64(checkouts.WithLabelValues("success"))-before)
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("popular", "hit"))
	misses := testutil.ToFloat64(cacheLookups.WithLabelValues("popular", "miss"))

	RecordCacheLookup("popular", true)
	RecordCacheLookup("popular", false)
	RecordCacheLookup("popular", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(cacheLookups.WithLabelValues("popular", "hit"))-hits)
	assert.Equal(t, float64(2), testutil.ToFloat64(cacheLookups.WithLabelValues("popular", "miss"))-misses)
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordCacheRefresh(true)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "gamestore_catalog_cache_refreshes_total"))
}
