package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"savora.app/api/internal/model"
	"savora.app/api/internal/service"
)

// AuditRequests records every request passing through the group it is
// mounted on. It runs after the auth gates, so the actor id is always
// present. Recording is fire-and-forget; the request proceeds whether
// or not the entry lands.
func AuditRequests(audit service.AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		level := model.LevelInfo
		if c.Request.Method == http.MethodDelete {
			level = model.LevelDelete
		}

		message := fmt.Sprintf("%s %s by user ID: %s",
			c.Request.Method, c.Request.URL.Path, c.GetString("user_id"))
		audit.Record(message, level)

		c.Next()
	}
}
