package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danceapp/events-api/internal/api/handler/v1/request"
	"github.com/danceapp/events-api/internal/api/handler/v1/response"
	"github.com/danceapp/events-api/internal/api/middleware"
)

var errNoUserInContext = errors.New("user id missing from request context")

func getUserID(ctx *gin.Context) (string, *response.Err) {
	id := ctx.GetString(middleware.UserIDKey)
	if id == "" {
		return "", response.ErrUnauthorized(errNoUserInContext)
	}
	return id, nil
}

// requireQuery renders the first missing parameter and reports whether the
// handler may go on.
func requireQuery(ctx *gin.Context, fields ...string) bool {
	missing := request.RequireQuery(ctx.Request.URL.Query(), fields...)
	if missing != nil {
		response.RenderErr(ctx, response.ErrRequiredQuery(request.FirstField(missing)))
		return false
	}
	return true
}

// requireBody renders every missing body field and reports whether the
// handler may go on.
func requireBody(ctx *gin.Context, body map[string]string, fields ...string) bool {
	missing := request.RequireBody(body, fields...)
	if missing != nil {
		response.RenderErr(ctx, response.ErrFields(missing))
		return false
	}
	return true
}

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.OK
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.OK{Status: response.StatusSuccess, Message: "OK"})
}
