package middleware

import (
	"errors"
	"net/http"

	"hirelens-backend/internal/delivery/http/response"
	"hirelens-backend/pkg/apperror"
	"hirelens-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					reqID, _ := c.Get("RequestID")
					logger.Log.Error("Internal server error",
						"request_id", reqID,
						"path", c.FullPath(),
						"error", appErr.Err,
					)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients; log
				// server-side and answer with a generic message.
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("Unhandled error",
					"request_id", reqID,
					"path", c.FullPath(),
					"error", err,
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
