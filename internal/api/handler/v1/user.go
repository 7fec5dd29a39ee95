package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danceapp/events-api/internal/api/handler/v1/request"
	"github.com/danceapp/events-api/internal/api/handler/v1/response"
	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	UploadProfilePicture(ctx context.Context, id, filename string, data io.Reader) (domain.User, error)
}

type UserHandler struct {
	svc            UserService
	maxUploadBytes int64
}

func NewUserHandler(svc UserService, maxUploadBytes int64) *UserHandler {
	return &UserHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleGetMe godoc
// @Summary      Get the caller's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Data{data=response.User}
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /user/me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		h.renderUserErr(ctx, "v1.HandleGetMe -> h.svc.GetUser", err)
		return
	}

	response.RenderData(ctx, "User Fetched Successfully", response.NewUser(user))
}

// HandleUpdateMe godoc
// @Summary      Update the caller's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateUserRequest  true  "fields to change"
// @Success      200      {object}  response.Data{data=response.User}
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /user/update [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateMe(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.UpdateProfile(ctx.Request.Context(), userID, req.ToDomain())
	if err != nil {
		h.renderUserErr(ctx, "v1.HandleUpdateMe -> h.svc.UpdateProfile", err)
		return
	}

	response.RenderData(ctx, "Profile Updated Successfully", response.NewUser(user))
}

// HandleUpdateFCMToken godoc
// @Summary      Register the caller's push token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.FCMTokenRequest  true  "device token"
// @Success      200      {object}  response.OK
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /user/fcm-token [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateFCMToken(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FCMTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if !requireBody(ctx, req.Fields(), "fcm_token") {
		return
	}

	if err := h.svc.UpdateFCMToken(ctx.Request.Context(), userID, req.FCMToken); err != nil {
		h.renderUserErr(ctx, "v1.HandleUpdateFCMToken -> h.svc.UpdateFCMToken", err)
		return
	}

	response.RenderOK(ctx, "Token Updated Successfully")
}

// HandleUploadProfilePicture godoc
// @Summary      Upload the caller's profile picture
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "jpg, jpeg, png, gif or webp"
// @Success      200    {object}  response.Data{data=response.User}
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /user/profile-picture [post]
// @Security BearerAuth
func (h *UserHandler) HandleUploadProfilePicture(ctx *gin.Context) {
	userID, respErr := getUserID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if h.maxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, h.maxUploadBytes)
	}

	header, err := ctx.FormFile("image")
	if err != nil {
		response.RenderErr(ctx, response.ErrField("image", "image: "+err.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadProfilePicture -> header.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}
	defer file.Close()

	user, err := h.svc.UploadProfilePicture(ctx.Request.Context(), userID, header.Filename, file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImageType) {
			response.RenderErr(ctx, response.ErrField("image", err.Error()))
			return
		}

		h.renderUserErr(ctx, "v1.HandleUploadProfilePicture -> h.svc.UploadProfilePicture", err)
		return
	}

	response.RenderData(ctx, "Profile Picture Uploaded Successfully", response.NewUser(user))
}

func (h *UserHandler) renderUserErr(ctx *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.RenderErr(ctx, response.ErrUnauthorized(err))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
}
