package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/middleware"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/summary"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// @Summary      Financial summary
// @Description  Aggregates revenue, expenses and commissions. month is "total" or YYYY-MM.
// @Tags         Summary
// @Produce      json
// @Param        month query string false "Month filter (YYYY-MM or total)"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/summary [get]
func ApiGetSummary(svc SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.DefaultQuery("month", summary.FilterTotal)
		if month != summary.FilterTotal && !types.ValidMonthKey(month) {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "month must be YYYY-MM or total"))
			return
		}

		out, err := svc.GetSummary(c.Request.Context(), mw.UserID(c), month)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(out))
	}
}

// @Summary      Month forecast
// @Description  Expected, received and outstanding revenue for the current month.
// @Tags         Summary
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/summary/forecast [get]
func ApiGetForecast(svc SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.GetForecast(c.Request.Context(), mw.UserID(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(out))
	}
}

func RegisterSummaryRoutes(r gin.IRouter, svc SummaryService) {
	r.GET("/summary", ApiGetSummary(svc))
	r.GET("/summary/forecast", ApiGetForecast(svc))
}
