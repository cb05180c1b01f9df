package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	request "workorder_service/internal/adapter/http/dto/request"
	response "workorder_service/internal/adapter/http/dto/response"
	"workorder_service/internal/adapter/http/middleware"
	"workorder_service/internal/domain/entities"
	"workorder_service/internal/usecase"
	"workorder_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingActor   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated actor", http.StatusUnauthorized)
)

// WorkOrderHandler handles HTTP requests for the work-order lifecycle and
// its cost ledger.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateWorkOrderInput{
		AssignedTo:          payload.AssignedTo,
		VehicleType:         payload.VehicleType,
		ServiceLocationType: payload.ServiceLocationType,
		IssueDescription:    payload.IssueDescription,
		VehicleLocation:     payload.VehicleLocation,
		VINInfo:             payload.VINInfo,
	})
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), usecase.ListWorkOrdersInput{
		Status:     c.Query("status"),
		CreatedBy:  c.Query("created_by"),
		AssignedTo: c.Query("assigned_to"),
	})
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.AddPart(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, usecase.PartInput{
		Name:      payload.Name,
		Quantity:  payload.Quantity,
		UnitPrice: payload.UnitPrice,
	})
	h.respond(c, w, err)
}

// RemovePart takes the part position in the path and the caller's expected
// version as a query parameter, since DELETE requests carry no body.
func (h *WorkOrderHandler) RemovePart(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	expectedVersion, _ := strconv.ParseInt(c.Query("expected_version"), 10, 64)

	w, err := h.usecase.RemovePart(c.Request.Context(), c.Param("id"), actor, expectedVersion, index)
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) AddLabor(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.AddLaborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.AddLabor(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, usecase.LaborInput{
		Description: payload.Description,
		Hours:       payload.Hours,
		RatePerHour: payload.RatePerHour,
	})
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) AddCharge(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.AddChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.AddAdditionalCharge(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, usecase.ChargeInput{
		Description: payload.Description,
		Amount:      payload.Amount,
	})
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) ProposeEstimate(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.ProposeEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.ProposeEstimate(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, usecase.EstimateInput{
		Amount:  payload.Amount,
		Details: payload.Details,
	})
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) AcceptEstimate(c *gin.Context) {
	h.decideEstimate(c, h.usecase.AcceptEstimate)
}

func (h *WorkOrderHandler) RejectEstimate(c *gin.Context) {
	h.decideEstimate(c, h.usecase.RejectEstimate)
}

func (h *WorkOrderHandler) decideEstimate(
	c *gin.Context,
	decide func(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error),
) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	// The body only carries the expected version, so an empty body is fine.
	var payload request.DecideEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := decide(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion)
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) Schedule(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	date, err := time.Parse(time.RFC3339, payload.ScheduledDate)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.Schedule(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, date)
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) StartWork(c *gin.Context) {
	h.changeStatus(c, h.usecase.StartWork)
}

func (h *WorkOrderHandler) MarkComplete(c *gin.Context) {
	h.changeStatus(c, h.usecase.MarkComplete)
}

func (h *WorkOrderHandler) changeStatus(
	c *gin.Context,
	change func(ctx context.Context, id string, actor entities.Actor, expectedVersion int64) (entities.WorkOrder, error),
) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := change(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion)
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) RecordPayment(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, usecase.PaymentInput{
		Amount: payload.Amount,
		Method: entities.PaymentMethod(payload.Method),
		Notes:  payload.Notes,
	})
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) AddPhoto(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.AddPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.AddPhoto(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, usecase.PhotoInput{
		URL:     payload.URL,
		Type:    entities.PhotoType(payload.Type),
		Caption: payload.Caption,
	})
	h.respond(c, w, err)
}

// UploadPhoto accepts a multipart form with a "file" part plus "type",
// "caption" and "expected_version" fields.
func (h *WorkOrderHandler) UploadPhoto(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	expectedVersion, _ := strconv.ParseInt(c.PostForm("expected_version"), 10, 64)

	w, err := h.usecase.UploadPhoto(c.Request.Context(), c.Param("id"), actor, expectedVersion, usecase.PhotoUploadInput{
		FileName: fileHeader.Filename,
		Data:     data,
		Type:     entities.PhotoType(c.PostForm("type")),
		Caption:  c.PostForm("caption"),
	})
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) PostMessage(c *gin.Context) {
	actor, ok := middleware.MustActor(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	var payload request.PostMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.PostMessage(c.Request.Context(), c.Param("id"), actor, payload.ExpectedVersion, payload.Body)
	h.respond(c, w, err)
}

func (h *WorkOrderHandler) Invoice(c *gin.Context) {
	result, err := h.usecase.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *WorkOrderHandler) respond(c *gin.Context, w entities.WorkOrder, err error) {
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidIssueDescription),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrEmptyPhotoUpload):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "Role is not allowed to perform this action", err, http.StatusForbidden)
	case errors.Is(err, entities.ErrLineItemNotFound):
		return pkg.NewDomainError("LINE_ITEM_NOT_FOUND", "Line item not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", "Work order was modified concurrently, reload and retry", err, http.StatusConflict)
	case errors.Is(err, entities.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", "Operation is not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotReady):
		return pkg.NewDomainError("INVOICE_NOT_READY", "Invoice is only available once work is complete", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was declined by the provider", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider is unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPhotoStoreNotConfigured):
		return pkg.NewDomainError("PHOTO_STORE_UNAVAILABLE", "Photo storage is not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
