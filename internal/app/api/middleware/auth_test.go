package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/access"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/auth"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

type stubParser struct{ err error }

func (s *stubParser) ParseToken(string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		Email:            "owner@agency.com",
	}, nil
}

type stubChecker struct{ fullAccess bool }

func (s *stubChecker) Check(context.Context, string) (*access.State, error) {
	return &access.State{TrialInfo: types.TrialInfo{HasFullAccess: s.fullAccess}}, nil
}

func authedRouter(parser TokenParser, checker AccessChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/", AuthMiddleware(parser), AccessGateMiddleware(checker))
	g.GET("/read", func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) })
	g.POST("/write", func(c *gin.Context) { c.String(http.StatusOK, "written") })
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := authedRouter(&stubParser{}, &stubChecker{fullAccess: true})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Contains(t, w.Body.String(), `"code":40100`)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := authedRouter(&stubParser{err: errors.New("expired")}, &stubChecker{fullAccess: true})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Contains(t, w.Body.String(), `"code":40100`)
}

func TestAuthMiddleware_SetsUser(t *testing.T) {
	r := authedRouter(&stubParser{}, &stubChecker{fullAccess: true})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, "u1", w.Body.String())
}

func TestAccessGate_BlocksMutationsOnly(t *testing.T) {
	r := authedRouter(&stubParser{}, &stubChecker{fullAccess: false})

	// Reads pass through in read-only mode.
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "u1", w.Body.String())

	// Writes are gated.
	req = httptest.NewRequest(http.MethodPost, "/write", nil)
	req.Header.Set("Authorization", "Bearer good")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Contains(t, w.Body.String(), `"code":40200`)
}

func TestAccessGate_AllowsMutationWithAccess(t *testing.T) {
	r := authedRouter(&stubParser{}, &stubChecker{fullAccess: true})

	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, "written", w.Body.String())
}
