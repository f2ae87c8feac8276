package handlers

import (
	"errors"
	"net/http"

	request "paintworks/internal/adapter/http/dto/request"
	response "paintworks/internal/adapter/http/dto/response"
	"paintworks/internal/usecase"
	"paintworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for the open-job worksheet and the
// closed-job archive.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	jobs, err := h.usecase.ListOpenJobs(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecords(jobs))
}

func (h *JobHandler) SaveOpenJob(c *gin.Context) {
	var payload request.JobRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SaveOpenJob(c.Request.Context(), payload.ToRecord())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(job))
}

func (h *JobHandler) DeleteOpenJob(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	if err := h.usecase.DeleteOpenJob(c.Request.Context(), idx); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CloseJob moves the open job at the given index into the closed jobs.
func (h *JobHandler) CloseJob(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	job, err := h.usecase.CloseJob(c.Request.Context(), idx)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecord(job))
}

func (h *JobHandler) AddJobExpense(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	var payload request.JobExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddJobExpense(c.Request.Context(), idx, payload.ToExpense())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(job))
}

func (h *JobHandler) RemoveJobExpense(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	job, err := h.usecase.RemoveJobExpense(c.Request.Context(), idx, c.Param("expenseId"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecord(job))
}

func (h *JobHandler) AddJobExtra(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddJobExtra(c.Request.Context(), idx, payload.ToLineItem())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobRecord(job))
}

func (h *JobHandler) UpdateRoom(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	roomIdx, ok := paramIndex(c, "roomIndex")
	if !ok {
		return
	}
	var payload request.RoomUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateRoom(c.Request.Context(), idx, roomIdx, payload.ToggleOption, payload.Note)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecord(job))
}

func (h *JobHandler) ListClosedJobs(c *gin.Context) {
	jobs, err := h.usecase.ListClosedJobs(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobRecords(jobs))
}

func (h *JobHandler) DeleteClosedJob(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	if err := h.usecase.DeleteClosedJob(c.Request.Context(), idx); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIndexOutOfRange), errors.Is(err, usecase.ErrRoomIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "No record at that position", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobExpenseNotFound):
		return pkg.NewDomainErrorSimple("JOB_EXPENSE_NOT_FOUND", "Expense not found on this job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingExpenseFields):
		return pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Expense requires a description and a non-zero amount", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
