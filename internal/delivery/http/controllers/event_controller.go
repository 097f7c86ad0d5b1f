package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	h "eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/delivery/http/middleware"
	"eventregistry/internal/domain"
)

// CreateEventRequest is the request body for POST /eventos. The owner is
// taken from the bearer token, never from the body. fechaInicio and fechaFin
// default to the creation time when omitted.
type CreateEventRequest struct {
	Name      string           `json:"nombre"`
	Category  *domain.Category `json:"categoria"`
	Venue     string           `json:"lugar"`
	Address   string           `json:"direccion"`
	StartTime *time.Time       `json:"fechaInicio"`
	EndTime   *time.Time       `json:"fechaFin"`
	Modality  *domain.Modality `json:"forma"`
}

// Validate implements Validator. Enum labels are already checked by the
// Category/Modality unmarshallers during decode.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "nombre is required")
	}
	if c.Category == nil {
		errs = append(errs, "categoria is required")
	}
	if c.Venue == "" {
		errs = append(errs, "lugar is required")
	}
	if c.Address == "" {
		errs = append(errs, "direccion is required")
	}
	if c.Modality == nil {
		errs = append(errs, "forma is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /eventos/{id}. Merge-patch
// semantics: all fields optional, omitted fields are unchanged. There is no
// owner field; unknown fields are rejected during decode.
type UpdateEventRequest struct {
	Name      *string          `json:"nombre"`
	Category  *domain.Category `json:"categoria"`
	Venue     *string          `json:"lugar"`
	Address   *string          `json:"direccion"`
	StartTime *time.Time       `json:"fechaInicio"`
	EndTime   *time.Time       `json:"fechaFin"`
	Modality  *domain.Modality `json:"forma"`
}

func (u UpdateEventRequest) patch() domain.EventPatch {
	return domain.EventPatch{
		Name:      u.Name,
		Category:  u.Category,
		Venue:     u.Venue,
		Address:   u.Address,
		StartTime: u.StartTime,
		EndTime:   u.EndTime,
		Modality:  u.Modality,
	}
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// eventID parses the {id} path segment. A non-numeric id cannot name an
// existing event, so it reports not-found rather than bad-request.
func eventID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (c *EventController) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteMessage(w, http.StatusNotFound, "Evento no encontrado")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteMessage(w, http.StatusForbidden, "No tiene acceso a este evento")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteMessage(w, http.StatusInternalServerError, "Ha ocurrido un error")
	}
}

// List godoc
// @Summary List own events
// @Description Returns every event owned by the authenticated user, most recent fechaInicio first.
// @Tags eventos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Event
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /eventos [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListOwned(r.Context(), owner)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Description Creates an event owned by the authenticated user. categoria must be one of CONFERENCE, SEMINAR, CONGRESS, COURSE; forma one of IN_PERSON, VIRTUAL.
// @Tags eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /eventos [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	start, end := now, now
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}
	event := domain.NewEvent(req.Name, *req.Category, req.Venue, req.Address, start, end, *req.Modality, owner)
	if err := c.Service.Create(r.Context(), event); err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// Get godoc
// @Summary Get an event
// @Tags eventos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse "owned by another user"
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /eventos/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := eventID(r)
	if !ok {
		h.WriteMessage(w, http.StatusNotFound, "Evento no encontrado")
		return
	}
	event, err := c.Service.Get(r.Context(), owner, id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event (merge patch)
// @Description Overwrites only the fields present in the body; omitted fields keep their values. The owner cannot be changed.
// @Tags eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse "owned by another user"
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /eventos/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := eventID(r)
	if !ok {
		h.WriteMessage(w, http.StatusNotFound, "Evento no encontrado")
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), owner, id, req.patch())
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags eventos
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse "owned by another user"
// @Failure 404 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /eventos/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.WriteMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := eventID(r)
	if !ok {
		h.WriteMessage(w, http.StatusNotFound, "Evento no encontrado")
		return
	}
	if err := c.Service.Delete(r.Context(), owner, id); err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
