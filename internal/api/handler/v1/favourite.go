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

type FavouriteService interface {
	ListFavourites(ctx context.Context, userID string, params filter.EventParams) ([]domain.FavouriteEvent, error)
	AddFavourite(ctx context.Context, userID, eventID string) (domain.FavouriteEvent, error)
	RemoveFavourite(ctx context.Context, id, userID string) error
}

type FavouriteHandler struct {
	svc FavouriteService
}

func NewFavouriteHandler(svc FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{
		svc: svc,
	}
}

// HandleGetAllFavourites godoc
// @Summary      List the caller's favourite events
// @Description  Accepts the same filters as /event/filtered. Past events are kept.
// @Tags         favourites
// @Produce      json
// @Param        type      query     string  false  "JSON array of event types"
// @Param        style     query     string  false  "JSON array of dance styles"
// @Param        date      query     string  false  "YYYY-MM-DD"
// @Param        title     query     string  false  "part of the title"
// @Param        location  query     string  false  "[lat, lon]"
// @Param        city      query     string  false  "city"
// @Param        province  query     string  false  "province"
// @Success      200       {object}  response.Data{data=[]response.FavouriteEvent}
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /event/get-all-favourites [get]
// @Security BearerAuth
func (h *FavouriteHandler) HandleGetAllFavourites(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventFilterRequest
	params, ok := parseEventFilter(ctx, &req)
	if !ok {
		return
	}

	favs, err := h.svc.ListFavourites(ctx.Request.Context(), userID, params)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAllFavourites -> h.svc.ListFavourites -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, "All Favourite Events Fetched Successfully", response.NewFavouriteEvents(favs))
}

// HandleAddToFavourites godoc
// @Summary      Save an event to the caller's favourites
// @Description  Saving the same event twice returns the existing favourite.
// @Tags         favourites
// @Produce      json
// @Param        eventUuid  query     string  true  "event uuid"
// @Success      200        {object}  response.Data{data=response.FavouriteEvent}
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /event/add-to-favourites [post]
// @Security BearerAuth
func (h *FavouriteHandler) HandleAddToFavourites(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !requireQuery(ctx, "eventUuid") {
		return
	}

	fav, err := h.svc.AddFavourite(ctx.Request.Context(), userID, ctx.Query("eventUuid"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrField("eventUuid", "invalid eventUuid"))
			return
		}

		err = fmt.Errorf("v1.HandleAddToFavourites -> h.svc.AddFavourite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, "Event Added to Favourites", response.NewFavouriteEvent(fav))
}

// HandleRemoveFromFavourites godoc
// @Summary      Remove a favourite
// @Description  uuid identifies the favourite itself, not the event.
// @Tags         favourites
// @Produce      json
// @Param        uuid  query     string  true  "favourite uuid"
// @Success      200   {object}  response.OK
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /event/remove-from-favourites [delete]
// @Security BearerAuth
func (h *FavouriteHandler) HandleRemoveFromFavourites(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !requireQuery(ctx, "uuid") {
		return
	}

	err := h.svc.RemoveFavourite(ctx.Request.Context(), ctx.Query("uuid"), userID)
	if err != nil {
		if errors.Is(err, service.ErrFavouriteNotFound) {
			response.RenderErr(ctx, response.ErrField("uuid", "invalid uuid"))
			return
		}

		err = fmt.Errorf("v1.HandleRemoveFromFavourites -> h.svc.RemoveFavourite -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderOK(ctx, "Event Removed from Favourites")
}
