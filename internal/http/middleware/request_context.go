package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutriserv/supply-backend/internal/pkg/ctxutil"
)

// AttachRequestContext copies the forwarded identity headers into the
// request context. The gateway in front of this service authenticates;
// we only read what it attached.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		rd := &ctxutil.RequestData{
			RequesterEmail: c.GetHeader("X-Requester-Email"),
			RequestID:      requestID,
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), rd)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
