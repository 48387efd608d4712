package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/miniactivity/server/internal/middleware"
	"github.com/miniactivity/server/internal/services"
	"github.com/miniactivity/server/internal/validation"
)

type EventHandler struct {
	eventService  *services.EventService
	exportService *services.ExportService
}

func NewEventHandler(eventService *services.EventService, exportService *services.ExportService) *EventHandler {
	return &EventHandler{
		eventService:  eventService,
		exportService: exportService,
	}
}

// ResolveOwner looks up the creator of the event addressed by the :id path
// parameter. Used by the ownership guard on mutating routes.
func (h *EventHandler) ResolveOwner(c *gin.Context) (string, error) {
	return h.eventService.GetEventOwner(c.Request.Context(), c.Param("id"))
}

// ListEvents returns all events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent returns a single event by id
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent creates an event owned by the caller
func (h *EventHandler) CreateEvent(c *gin.Context) {
	body := middleware.Body[validation.CreateEventRequest](c)

	// validated upstream, cannot fail here
	date, err := validation.ParseDate(body.Date)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	creatorID, err := uuid.Parse(middleware.CallerID(c))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), creatorID, body.Title, date, body.TagIDs)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update to an event
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	body := middleware.Body[validation.UpdateEventRequest](c)

	var date *time.Time
	if body.Date != nil {
		parsed, err := validation.ParseDate(*body.Date)
		if err != nil {
			middleware.Abort(c, err)
			return
		}
		date = &parsed
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), body.Title, date, body.TagIDs)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddAttendee adds an attendee to an event. A duplicate email yields a
// null body, not an error.
func (h *EventHandler) AddAttendee(c *gin.Context) {
	body := middleware.Body[validation.AddAttendeeRequest](c)

	attendee, err := h.eventService.AddAttendee(c.Request.Context(), c.Param("id"), body.Name, body.Email)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	if attendee == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusCreated, attendee)
}

// RemoveAttendee removes an attendee from an event
func (h *EventHandler) RemoveAttendee(c *gin.Context) {
	removed, err := h.eventService.RemoveAttendee(c.Request.Context(), c.Param("id"), c.Param("attendee_id"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ExportAttendees streams the event's attendee list as an Excel workbook
func (h *EventHandler) ExportAttendees(c *gin.Context) {
	ctx := c.Request.Context()

	event, err := h.eventService.GetEvent(ctx, c.Param("id"))
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	workbook, err := h.exportService.AttendeeWorkbook(ctx, event)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.AttendeeExportFilename(event)+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		middleware.Abort(c, err)
		return
	}
}
