package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/danceapp/events-api/internal/api/handler/v1/request"
	"github.com/danceapp/events-api/internal/api/handler/v1/response"
	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
	"github.com/danceapp/events-api/internal/service"
)

type EventService interface {
	GetEvent(ctx context.Context, id string) (domain.EventDetails, error)
	FilterEvents(ctx context.Context, params filter.EventParams) ([]domain.Event, error)
	GetBookingDetails(ctx context.Context, eventID string) (domain.BookingDetails, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Description  Returns the event with the number of tickets still available.
// @Tags         events
// @Produce      json
// @Param        uuid  query     string  true  "event uuid"
// @Success      200   {object}  response.Data{data=response.Event}
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /event/get [get]
// @Security BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	if !requireQuery(ctx, "uuid") {
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), ctx.Query("uuid"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrField("uuid", "invalid uuid"))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, "Event Fetched Successfully", response.NewEvent(event))
}

// HandleFilteredEvents godoc
// @Summary      List upcoming events
// @Description  All filters are combined. type and style take a JSON array, location takes [lat, lon].
// @Tags         events
// @Produce      json
// @Param        type      query     string  false  "JSON array of event types"
// @Param        style     query     string  false  "JSON array of dance styles"
// @Param        date      query     string  false  "YYYY-MM-DD"
// @Param        title     query     string  false  "part of the title"
// @Param        location  query     string  false  "[lat, lon]"
// @Param        city      query     string  false  "city"
// @Param        province  query     string  false  "province"
// @Success      200       {object}  response.Data{data=[]response.EventSummary}
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /event/filtered [get]
// @Security BearerAuth
func (h *EventHandler) HandleFilteredEvents(ctx *gin.Context) {
	var req request.EventFilterRequest
	params, ok := parseEventFilter(ctx, &req)
	if !ok {
		return
	}

	events, err := h.svc.FilterEvents(ctx.Request.Context(), params)
	if err != nil {
		if errors.Is(err, service.ErrDateInPast) {
			msg := fmt.Sprintf("Event on date %s has already occured.", req.Date)
			response.RenderData(ctx, msg, []response.EventSummary{})
			return
		}

		err = fmt.Errorf("v1.HandleFilteredEvents -> h.svc.FilterEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, "Filtered Events Fetched Successfully", response.NewEventSummaries(events))
}

// HandleBookingDetails godoc
// @Summary      Get booking details of an event
// @Description  Concerts return passData. Congresses return passesData, roomsData and foodData.
// @Tags         events
// @Produce      json
// @Param        eventUuid  query     string  true  "event uuid"
// @Success      200        {object}  response.Data{data=response.CongressBooking}
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      422        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /event/booking-details [get]
// @Security BearerAuth
func (h *EventHandler) HandleBookingDetails(ctx *gin.Context) {
	if !requireQuery(ctx, "eventUuid") {
		return
	}

	details, err := h.svc.GetBookingDetails(ctx.Request.Context(), ctx.Query("eventUuid"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrValidation("No Event Exist", "eventUuid"))
		case errors.Is(err, service.ErrBookingNotAllowed):
			response.RenderErr(ctx, response.ErrValidation("Booking is allowed for Concert and Congress Only", ""))
		default:
			err = fmt.Errorf("v1.HandleBookingDetails -> h.svc.GetBookingDetails -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	response.RenderData(ctx, "Data Fetched", response.NewBookingDetails(details))
}

// parseEventFilter binds and parses the filter query. Malformed JSON in a
// parameter is a server-side failure, other bad values are front errors.
func parseEventFilter(ctx *gin.Context, req *request.EventFilterRequest) (filter.EventParams, bool) {
	if err := ctx.ShouldBindQuery(req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return filter.EventParams{}, false
	}

	params, err := req.Parse()
	if err != nil {
		var fieldErr *request.FieldError
		if errors.As(err, &fieldErr) {
			response.RenderErr(ctx, response.ErrField(fieldErr.Field, fieldErr.Message))
			return filter.EventParams{}, false
		}

		err = fmt.Errorf("v1.parseEventFilter -> req.Parse -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return filter.EventParams{}, false
	}

	return params, true
}
