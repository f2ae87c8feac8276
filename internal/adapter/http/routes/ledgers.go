package routes

import (
	"paintworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPriceLists = "/pricelists"
	PathExpenses   = "/expenses"
	PathPayouts    = "/payouts"
)

func addLedgerRoutes(
	rg *gin.RouterGroup,
	priceListHandler *handlers.PriceListHandler,
	expenseHandler *handlers.ExpenseHandler,
	payoutHandler *handlers.PayoutHandler,
) {
	priceLists := rg.Group(PathPriceLists)
	{
		priceLists.GET("/:context", priceListHandler.GetPriceList)
		priceLists.PUT("/:context", priceListHandler.SavePriceList)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.AddExpense)
		expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	}

	payouts := rg.Group(PathPayouts)
	{
		payouts.GET("", payoutHandler.ListPayouts)
		payouts.POST("", payoutHandler.AddPayout)
		payouts.DELETE("/:id", payoutHandler.DeletePayout)
	}
}
