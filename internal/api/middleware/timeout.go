package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menu-recommendation/internal/pkg/common"
)

// Timeout 요청 context에 기한을 건다. 응답 전에 기한이 지나면 408
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", d),
			)
			c.AbortWithStatusJSON(http.StatusRequestTimeout, common.ErrorResponse{
				Code:    common.ErrRequestTimeout.Code,
				Message: common.ErrRequestTimeout.Message,
				Details: gin.H{"timeout": d.String()},
			})
		}
	}
}
