package v1

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/danceapp/events-api/internal/api/handler/v1/request"
	"github.com/danceapp/events-api/internal/api/handler/v1/response"
	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/filter"
)

type AdvertisementService interface {
	GetAdvertisements(ctx context.Context, params filter.AdvertisementParams) ([]domain.Advertisement, error)
}

type AdvertisementHandler struct {
	svc AdvertisementService
}

func NewAdvertisementHandler(svc AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{
		svc: svc,
	}
}

// HandleGetAdvertisements godoc
// @Summary      List advertisements
// @Tags         advertisements
// @Produce      json
// @Param        title     query     string  false  "part of the title"
// @Param        category  query     string  false  "category"
// @Success      200       {object}  response.Data{data=[]response.Advertisement}
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /advertisement/get [get]
// @Security BearerAuth
func (h *AdvertisementHandler) HandleGetAdvertisements(ctx *gin.Context) {
	var req request.AdvertisementRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ads, err := h.svc.GetAdvertisements(ctx.Request.Context(), req.Parse())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetAdvertisements -> h.svc.GetAdvertisements -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.RenderData(ctx, "Advertisements Fetched Successfully", response.NewAdvertisements(ads))
}
