package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/soultrip/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSystemTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewSystemHandler(nil, "1.2.3", zap.NewNop())
	engine := gin.New()

	group := router.NewDomainGroup("system", "")
	h.RegisterRoutes(group)
	r := router.NewRouter(engine)
	r.Register(group)
	r.Setup()

	return engine
}

func TestSystemHandler_Health(t *testing.T) {
	engine := newSystemTestRouter()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
}

func TestSystemHandler_Info(t *testing.T) {
	engine := newSystemTestRouter()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/info", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "soultrip", data["name"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
}

func TestSystemHandler_Ping(t *testing.T) {
	engine := newSystemTestRouter()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
