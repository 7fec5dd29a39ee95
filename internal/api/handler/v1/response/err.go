package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"

	msgSomethingWentWrong = "Something went wrong, please try again later"
	msgFieldRequired      = "This field is required."
)

// Err is the failed form of the envelope. Err and HTTPStatusCode never reach the client.
type Err struct {
	Err            error             `json:"-"`
	HTTPStatusCode int               `json:"-"`
	Status         string            `json:"status"`
	Message        string            `json:"message"`
	Errors         map[string]string `json:"errors,omitempty"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// RenderErr writes e and aborts the chain. Server errors are logged with the
// request id before the generic body goes out.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrBadRequest is a front error carrying a plain message.
func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Status:         StatusFailed,
		Message:        err.Error(),
	}
}

// ErrField is a front error on a single field.
func ErrField(field, msg string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Status:         StatusFailed,
		Message:        msg,
		Errors:         map[string]string{field: msg},
	}
}

// ErrFields is a front error listing every offending field.
func ErrFields(fields map[string]string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Status:         StatusFailed,
		Message:        "Required fields are missing.",
		Errors:         fields,
	}
}

// ErrRequiredQuery renders the first missing query parameter.
func ErrRequiredQuery(field string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Status:         StatusFailed,
		Message:        field + ": " + msgFieldRequired,
	}
}

// ErrValidation rejects a request the entity state does not allow.
// field may be empty.
func ErrValidation(msg, field string) *Err {
	e := &Err{
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Status:         StatusFailed,
		Message:        msg,
	}
	if field != "" {
		e.Errors = map[string]string{field: msg}
	}
	return e
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Status:         StatusFailed,
		Message:        "Unauthorized",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Status:         StatusFailed,
		Message:        "Invalid email or password",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         StatusFailed,
		Message:        msgSomethingWentWrong,
	}
}
