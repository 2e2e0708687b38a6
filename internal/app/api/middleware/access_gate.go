package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/access"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
)

// AccessChecker computes the caller's gating state; satisfied by the access
// service.
type AccessChecker interface {
	Check(ctx context.Context, userID string) (*access.State, error)
}

// AccessGateMiddleware blocks mutating requests once the trial has expired
// and no paid subscription is active. Reads stay available so the account
// remains inspectable in read-only mode.
func AccessGateMiddleware(svc AccessChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		state, err := svc.Check(c.Request.Context(), UserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, "failed to check access"))
			return
		}
		if !state.TrialInfo.HasFullAccess {
			c.AbortWithStatusJSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodePaymentRequired, "trial expired"))
			return
		}
		c.Next()
	}
}
