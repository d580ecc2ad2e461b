package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/auth"
	"github.com/folioforge/folioforge/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	ownerID := uuid.New()

	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtSvc), func(c *gin.Context) {
		id, ok := GetOwnerIDFromGinContext(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"owner_id": id})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		otherSvc := auth.NewJWTService("another-secret", time.Hour)
		token, err := otherSvc.GenerateToken(ownerID)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken(ownerID)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), ownerID.String())
	})
}

func TestErrorMiddleware(t *testing.T) {
	newRouter := func(fail func(c *gin.Context)) *gin.Engine {
		router := gin.New()
		router.Use(ErrorMiddleware(logger.NewNop()))
		router.GET("/fail", fail)
		return router
	}

	t.Run("app error keeps its status", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			c.Error(apperror.NewNotFound("portfolio", uuid.New().String()))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("invalid input maps to 400", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			c.Error(apperror.NewInvalidInput("bad payload", nil))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("plain error becomes 500 with neutral body", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			c.Error(errors.New("pgx: connection refused"))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "pgx", "internal detail must not leak")
	})

	t.Run("no error passes through", func(t *testing.T) {
		router := newRouter(func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestInFlightGuard(t *testing.T) {
	ownerID := uuid.New()
	release := make(chan struct{})
	started := make(chan struct{})

	router := gin.New()
	router.POST("/slow",
		func(c *gin.Context) { c.Set(GinContextKeyOwnerID, ownerID) },
		InFlightGuard("save"),
		func(c *gin.Context) {
			close(started)
			<-release
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)

	firstDone := make(chan int, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/slow", nil))
		firstDone <- w.Code
	}()

	<-started

	// Duplicate submit while the first request is still running.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/slow", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	close(release)
	wg.Wait()
	assert.Equal(t, http.StatusOK, <-firstDone)

	// The slot frees up once the first request finishes.
	router2 := gin.New()
	router2.POST("/fast",
		func(c *gin.Context) { c.Set(GinContextKeyOwnerID, ownerID) },
		InFlightGuard("save"),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	w = httptest.NewRecorder()
	router2.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router2.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code, "sequential requests are never blocked")
}

func TestInFlightGuard_DifferentOwnersDoNotCollide(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	guard := InFlightGuard("publish")

	newRouter := func(ownerID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.POST("/go",
			func(c *gin.Context) { c.Set(GinContextKeyOwnerID, ownerID) },
			guard,
			handler,
		)
		return router
	}

	slow := newRouter(uuid.New(), func(c *gin.Context) {
		close(started)
		<-release
		c.Status(http.StatusOK)
	})
	fast := newRouter(uuid.New(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		slow.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/go", nil))
	}()

	<-started

	w := httptest.NewRecorder()
	fast.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/go", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	close(release)
	wg.Wait()
}
