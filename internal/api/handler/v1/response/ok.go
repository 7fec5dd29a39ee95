package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type OK struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Data is the success envelope carrying a payload. The data key is always written.
type Data struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func RenderOK(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusOK, OK{Status: StatusSuccess, Message: msg})
}

func RenderData(ctx *gin.Context, msg string, data any) {
	ctx.JSON(http.StatusOK, Data{Status: StatusSuccess, Message: msg, Data: data})
}

func RenderCreated(ctx *gin.Context, msg string, data any) {
	ctx.JSON(http.StatusCreated, Data{Status: StatusSuccess, Message: msg, Data: data})
}
