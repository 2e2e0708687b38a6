package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/middleware"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/access"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/auth"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type sessionResponse struct {
	User   *models.User  `json:"user"`
	Access *access.State `json:"access"`
}

// @Summary      Register
// @Description  Creates an account and returns a token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body auth.RegisterInput true "Registration data"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/auth/register [post]
func ApiRegister(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		user, err := svc.Register(c.Request.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrEmailTaken):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "email already registered"))
			case errors.Is(err, auth.ErrInvalidInput):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			default:
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			}
			return
		}

		token, err := svc.IssueToken(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(authResponse{User: user, Token: token}))
	}
}

// @Summary      Login
// @Description  Verifies credentials and returns a token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handlers.loginRequest true "Credentials"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/auth/login [post]
func ApiLogin(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		user, token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidCredentials):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid email or password"))
			case errors.Is(err, auth.ErrEmailNotConfirmed):
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeUnauthorized, "email not confirmed"))
			default:
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			}
			return
		}
		c.JSON(http.StatusOK, response.OKT(authResponse{User: user, Token: token}))
	}
}

// @Summary      Session
// @Description  Returns the authenticated user and current access state.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/auth/session [get]
func ApiSession(svc AuthService, accessSvc AccessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := mw.UserID(c)

		user, err := svc.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, "user not found"))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		state, err := accessSvc.Check(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(sessionResponse{User: user, Access: state}))
	}
}

func RegisterAuthRoutes(public gin.IRouter, authed gin.IRouter, svc AuthService, accessSvc AccessService) {
	public.POST("/auth/register", ApiRegister(svc))
	public.POST("/auth/login", ApiLogin(svc))
	authed.GET("/auth/session", ApiSession(svc, accessSvc))
}
