package response

import (
	"errors"
	"net/http"

	"bitcoind-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope. Every failure, whether a
// validation rejection or a translated node error, renders this shape; raw
// transport errors never cross the HTTP boundary.
type ErrorResponse struct {
	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// OK sends a 200 response with the payload as-is. Endpoint payload shapes are
// fixed by the API contract, so there is no success wrapper.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it via the error's HTTP status, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Status:    "error",
			ErrorCode: appErr.Code,
			Message:   appErr.Message,
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:    "error",
		ErrorCode: "SYS_000",
		Message:   "Internal server error",
	})
}
