package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID はX-Request-IDヘッダーを引き継ぐか、新しく採番する
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Writer.Header().Set("X-Request-ID", id)
		ctx.Next()
	}
}
