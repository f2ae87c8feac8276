package routes

import (
	"paintworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates  = "/estimates"
	PathOpenJobs   = "/jobs/open"
	PathClosedJobs = "/jobs/closed"
	PathInvoices   = "/invoices"
	PathJobNumbers = "/job-numbers"
)

func addJobCostingRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	jobHandler *handlers.JobHandler,
	invoiceHandler *handlers.InvoiceHandler,
	numberHandler *handlers.NumberHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.SaveEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.POST("/:id/promote", estimateHandler.PromoteEstimate)
	}

	openJobs := rg.Group(PathOpenJobs)
	{
		openJobs.GET("", jobHandler.ListOpenJobs)
		openJobs.POST("", jobHandler.SaveOpenJob)
		openJobs.DELETE("/:index", jobHandler.DeleteOpenJob)
		openJobs.POST("/:index/close", jobHandler.CloseJob)
		openJobs.POST("/:index/expenses", jobHandler.AddJobExpense)
		openJobs.DELETE("/:index/expenses/:expenseId", jobHandler.RemoveJobExpense)
		openJobs.POST("/:index/extras", jobHandler.AddJobExtra)
		openJobs.PATCH("/:index/rooms/:roomIndex", jobHandler.UpdateRoom)
	}

	closedJobs := rg.Group(PathClosedJobs)
	{
		closedJobs.GET("", jobHandler.ListClosedJobs)
		closedJobs.DELETE("/:index", jobHandler.DeleteClosedJob)
		closedJobs.POST("/:index/invoice", invoiceHandler.InvoiceClosedJob)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.SaveInvoice)
		invoices.DELETE("/:index", invoiceHandler.DeleteInvoice)
	}

	numbers := rg.Group(PathJobNumbers)
	{
		numbers.GET("/next", numberHandler.NextJobNumber)
	}
}
