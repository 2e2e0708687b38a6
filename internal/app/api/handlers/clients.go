package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/middleware"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/client"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
)

// @Summary      List clients
// @Tags         Clients
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/clients [get]
func ApiListClients(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := svc.List(c.Request.Context(), mw.UserID(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(clients))
	}
}

// @Summary      Create client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        request body client.Input true "Client data"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/clients [post]
func ApiCreateClient(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req client.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		created, err := svc.Create(c.Request.Context(), mw.UserID(c), &req)
		if err != nil {
			respondClientErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client id"
// @Param        request body client.Input true "Client data"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/clients/{id} [put]
func ApiUpdateClient(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req client.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		updated, err := svc.Update(c.Request.Context(), mw.UserID(c), c.Param("id"), &req)
		if err != nil {
			respondClientErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Delete client
// @Tags         Clients
// @Produce      json
// @Param        id path string true "Client id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/clients/{id} [delete]
func ApiDeleteClient(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), mw.UserID(c), c.Param("id")); err != nil {
			respondClientErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]bool{"deleted": true}))
	}
}

// @Summary      Mark client paid
// @Description  Records a payment for the current month and creates the commission record.
// @Tags         Clients
// @Produce      json
// @Param        id path string true "Client id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/clients/{id}/mark-paid [post]
func ApiMarkClientPaid(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, err := svc.MarkPaid(c.Request.Context(), mw.UserID(c), c.Param("id"))
		if err != nil {
			respondClientErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Billing statuses
// @Description  Derived billing view for today, overdue clients first.
// @Tags         Clients
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/clients/billing-status [get]
func ApiClientBillingStatus(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := svc.BillingOverview(c.Request.Context(), mw.UserID(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(overview))
	}
}

func respondClientErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrNotFound):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, "client not found"))
	case errors.Is(err, client.ErrInvalidInput):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	default:
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}

func RegisterClientRoutes(r gin.IRouter, svc ClientService) {
	r.GET("/clients", ApiListClients(svc))
	r.POST("/clients", ApiCreateClient(svc))
	r.PUT("/clients/:id", ApiUpdateClient(svc))
	r.DELETE("/clients/:id", ApiDeleteClient(svc))
	r.POST("/clients/:id/mark-paid", ApiMarkClientPaid(svc))
	r.GET("/clients/billing-status", ApiClientBillingStatus(svc))
}
