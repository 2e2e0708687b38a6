package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/middleware"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/commission"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

type generateCommissionsRequest struct {
	Month string `json:"month"`
}

type generateCommissionsResponse struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

type commissionStatusRequest struct {
	Status types.CommissionPaymentStatus `json:"status"`
}

// @Summary      Generate commissions
// @Description  Creates commission records for paid clients of the given month. Safe to repeat.
// @Tags         Commissions
// @Accept       json
// @Produce      json
// @Param        request body handlers.generateCommissionsRequest true "Target month (YYYY-MM)"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/commissions/generate [post]
func ApiGenerateCommissions(svc CommissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateCommissionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if !types.ValidMonthKey(req.Month) {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "month must be YYYY-MM"))
			return
		}

		plan, err := svc.GenerateForMonth(c.Request.Context(), mw.UserID(c), req.Month)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(generateCommissionsResponse{
			Inserted: len(plan.ToInsert),
			Updated:  len(plan.ToUpdate),
		}))
	}
}

// @Summary      List commissions
// @Tags         Commissions
// @Produce      json
// @Param        month query string false "Restrict to month (YYYY-MM)"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/commissions [get]
func ApiListCommissions(svc CommissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		if month != "" && !types.ValidMonthKey(month) {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "month must be YYYY-MM"))
			return
		}

		records, err := svc.List(c.Request.Context(), mw.UserID(c), month)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(records))
	}
}

// @Summary      Scan commissions
// @Description  Filterable, paginated commission listing.
// @Tags         Commissions
// @Accept       json
// @Produce      json
// @Param        request body commission.ScanRequest true "Filters and pagination"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/commissions/scan [post]
func ApiScanCommissions(svc CommissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commission.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := svc.Scan(c.Request.Context(), mw.UserID(c), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Update commission status
// @Description  Flips a commission between pending and paid.
// @Tags         Commissions
// @Accept       json
// @Produce      json
// @Param        id path string true "Commission id"
// @Param        request body handlers.commissionStatusRequest true "New status"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/commissions/{id}/status [post]
func ApiUpdateCommissionStatus(svc CommissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commissionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if !req.Status.Valid() {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "status must be paid or pending"))
			return
		}

		record, err := svc.UpdateStatus(c.Request.Context(), mw.UserID(c), c.Param("id"), req.Status)
		if err != nil {
			if errors.Is(err, commission.ErrRecordNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, "commission not found"))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(record))
	}
}

func RegisterCommissionRoutes(r gin.IRouter, svc CommissionService) {
	r.POST("/commissions/generate", ApiGenerateCommissions(svc))
	r.GET("/commissions", ApiListCommissions(svc))
	r.POST("/commissions/scan", ApiScanCommissions(svc))
	r.POST("/commissions/:id/status", ApiUpdateCommissionStatus(svc))
}
