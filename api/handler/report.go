package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagelens/pagelens/analyzer"
	"github.com/pagelens/pagelens/models"
)

// Report returns a handler for GET /api/v1/report. It rebuilds the category
// report for the most recently analyzed URL, re-running the technical audit.
func Report(an *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := an.Report(c.Request.Context())
		if err != nil {
			auditErr, ok := err.(*models.AuditError)
			if !ok {
				auditErr = models.NewAuditError(models.ErrCodeInternal, err.Error(), err)
			}
			c.JSON(mapErrorToStatus(auditErr), models.ReportResponse{
				Success: false,
				Error:   auditErr.ToDetail(),
			})
			return
		}

		c.JSON(http.StatusOK, models.ReportResponse{
			Success: true,
			Report:  rep,
		})
	}
}
