package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookline/internal/domain/appointment"
	reqdto "bookline/internal/handler/dto/request"
	resdto "bookline/internal/handler/dto/response"
	"bookline/internal/handler/httperr"
	"bookline/internal/handler/middleware"
	"bookline/internal/usecase/commands"
	"bookline/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, qs queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create appointment
// @Description Register a new appointment for a registered client or a walk-in
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), ownerID, req.ToParams())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Get a single appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List the owner's appointments, optionally narrowed by status and a time range
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, confirmed, cancelled)"
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	filter, err := h.parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	items, err := h.queries.ListByOwner(c.Request.Context(), ownerID, filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

// @Summary List today's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments/today [get]
func (h *AppointmentHandler) ListToday(c *gin.Context) {
	h.listCalendar(c, h.queries.ListToday)
}

// @Summary List this week's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments/week [get]
func (h *AppointmentHandler) ListThisWeek(c *gin.Context) {
	h.listCalendar(c, h.queries.ListThisWeek)
}

// @Summary List this month's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments/month [get]
func (h *AppointmentHandler) ListThisMonth(c *gin.Context) {
	h.listCalendar(c, h.queries.ListThisMonth)
}

// @Summary Update appointment details
// @Description Reschedule, change the service or pricing, or edit notes
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id} [patch]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	ownerID, id, req, ok := bindMutation[reqdto.UpdateAppointmentRequest](c)
	if !ok {
		return
	}

	view, err := h.commands.UpdateDetails(c.Request.Context(), ownerID, id, req.ToParams())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Change appointment status
// @Description Move the appointment through its lifecycle (confirm or cancel)
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	ownerID, id, req, ok := bindMutation[reqdto.ChangeStatusRequest](c)
	if !ok {
		return
	}

	view, err := h.commands.ChangeStatus(c.Request.Context(), ownerID, id, appointment.Status(req.Status))
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Toggle paid flag
// @Description Flip the paid flag, or set it explicitly when "paid" is present
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.TogglePaidRequest false "Explicit paid value"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id}/paid [patch]
func (h *AppointmentHandler) TogglePaid(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	// Body is optional: an empty body means flip.
	var req reqdto.TogglePaidRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	view, err := h.commands.TogglePaid(c.Request.Context(), ownerID, id, req.Paid)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Delete appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) listCalendar(
	c *gin.Context,
	list func(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*queries.AppointmentListItem, error),
) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	status, err := parseStatusFilter(c.Query("status"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	items, err := list(c.Request.Context(), ownerID, status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

func (h *AppointmentHandler) parseListFilter(c *gin.Context) (queries.ListFilter, error) {
	var filter queries.ListFilter

	status, err := parseStatusFilter(c.Query("status"))
	if err != nil {
		return filter, err
	}
	filter.Status = status

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" || toRaw != "" {
		if fromRaw == "" || toRaw == "" {
			return filter, errors.New("from and to must be given together")
		}
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return filter, errors.New("invalid from timestamp")
		}
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return filter, errors.New("invalid to timestamp")
		}
		window, err := appointment.NewWindow(from, to)
		if err != nil {
			return filter, errors.New("from must not be after to")
		}
		filter.Window = &window
	}

	if limitRaw := c.Query("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit <= 0 {
			return filter, errors.New("invalid limit")
		}
		filter.Limit = limit
	}
	return filter, nil
}

func parseStatusFilter(raw string) (*appointment.Status, error) {
	if raw == "" {
		return nil, nil
	}
	status := appointment.Status(raw)
	if !status.IsValid() {
		return nil, errors.New("invalid status filter")
	}
	return &status, nil
}

func bindMutation[T any](c *gin.Context) (uuid.UUID, uuid.UUID, T, bool) {
	var req T

	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return uuid.Nil, uuid.Nil, req, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, req, false
	}

	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return uuid.Nil, uuid.Nil, req, false
	}
	return ownerID, id, req, true
}

func (h *AppointmentHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrUnauthorizedOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)
	case errors.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	case errors.Is(err, commands.ErrAccessCodeConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Could not allocate a unique access code", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func (h *AppointmentHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errors.Is(err, queries.ErrUnauthorizedOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
