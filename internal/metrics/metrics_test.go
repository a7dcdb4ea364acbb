package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/event/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/event/:id", "200"))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/event/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/event/:id", "200"))
	assert.Equal(t, before+2, after)
}

func TestRecordAuthRejection(t *testing.T) {
	before := testutil.ToFloat64(authRejections.WithLabelValues("missing_token"))
	RecordAuthRejection("missing_token")
	assert.Equal(t, before+1, testutil.ToFloat64(authRejections.WithLabelValues("missing_token")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordAuthRejection("not_admin")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mcpitc_auth_rejections_total")
}
