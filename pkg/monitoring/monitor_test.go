package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"learning_progress_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/modules/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := RequestCounter.WithLabelValues(http.MethodGet, "/api/modules/:id", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/modules/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/modules/2", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestObserveProgress(t *testing.T) {
	ObserveProgress(model.ProgressStats{Total: 8, Completed: 3, Percentage: 38})

	assert.Equal(t, float64(3), testutil.ToFloat64(ModulesCompleted))
	assert.Equal(t, float64(38), testutil.ToFloat64(ProgressPercentage))
}

func TestObserveCompletionUpdate(t *testing.T) {
	ok := CompletionUpdates.WithLabelValues("false", "ok")
	notFound := CompletionUpdates.WithLabelValues("true", "not_found")
	okBefore, nfBefore := testutil.ToFloat64(ok), testutil.ToFloat64(notFound)

	ObserveCompletionUpdate(false, nil)
	ObserveCompletionUpdate(true, errors.New("missing"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, nfBefore+1, testutil.ToFloat64(notFound))
}

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}
