package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/middleware"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/expense"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/response"
)

// @Summary      List agency expenses
// @Tags         Expenses
// @Produce      json
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/expenses [get]
func ApiListExpenses(svc ExpenseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		expenses, err := svc.List(c.Request.Context(), mw.UserID(c))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(expenses))
	}
}

// @Summary      Create agency expense
// @Tags         Expenses
// @Accept       json
// @Produce      json
// @Param        request body expense.Input true "Expense data"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/expenses [post]
func ApiCreateExpense(svc ExpenseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req expense.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		created, err := svc.Create(c.Request.Context(), mw.UserID(c), &req)
		if err != nil {
			respondExpenseErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(created))
	}
}

// @Summary      Update agency expense
// @Tags         Expenses
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense id"
// @Param        request body expense.Input true "Expense data"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/expenses/{id} [put]
func ApiUpdateExpense(svc ExpenseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req expense.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		updated, err := svc.Update(c.Request.Context(), mw.UserID(c), c.Param("id"), &req)
		if err != nil {
			respondExpenseErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(updated))
	}
}

// @Summary      Delete agency expense
// @Tags         Expenses
// @Produce      json
// @Param        id path string true "Expense id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/expenses/{id} [delete]
func ApiDeleteExpense(svc ExpenseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), mw.UserID(c), c.Param("id")); err != nil {
			respondExpenseErr(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]bool{"deleted": true}))
	}
}

func respondExpenseErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, expense.ErrNotFound):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, "expense not found"))
	case errors.Is(err, expense.ErrInvalidInput):
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
	default:
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
	}
}

func RegisterExpenseRoutes(r gin.IRouter, svc ExpenseService) {
	r.GET("/expenses", ApiListExpenses(svc))
	r.POST("/expenses", ApiCreateExpense(svc))
	r.PUT("/expenses/:id", ApiUpdateExpense(svc))
	r.DELETE("/expenses/:id", ApiDeleteExpense(svc))
}
