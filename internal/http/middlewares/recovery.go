package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic anywhere in the chain into the generic 500 body.
// The panic value is only logged.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		reqID, _ := ctx.Get(CtxRequestID)

		log.ErrorContext(ctx.Request.Context(), "panic_recovered",
			"panic", recovered,
			"route", ctx.FullPath(),
			"request_id", reqID,
		)

		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
	})
}
