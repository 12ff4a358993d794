package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingRegistrar struct {
	path string
}

func (p *pingRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(p.path, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func TestRouter_RegistersUnderVersionedGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Register(&pingRegistrar{path: "/ping"})
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_WithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))
	r.Register(&pingRegistrar{path: "/ping"})
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v2/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MultipleRegistrars(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Register(&pingRegistrar{path: "/rates/ping"}).
		Register(&pingRegistrar{path: "/ledger/ping"})
	r.Setup()

	for _, path := range []string{"/api/v1/rates/ping", "/api/v1/ledger/ping"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_GroupMiddleware(t *testing.T) {
	engine := gin.New()
	var called bool
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})
	r.Register(&pingRegistrar{path: "/ping"})
	r.Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
