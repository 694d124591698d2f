package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagelens/pagelens/analyzer"
	"github.com/pagelens/pagelens/models"
)

// Analyze returns a handler for POST /api/v1/analyze.
//
// Orchestration flow:
//  1. Parse & validate request, apply defaults.
//  2. Analyzer.Analyze → acquisition, corpus gate, corrections, audits,
//     report (URL input) or corrections + copy audit (text input).
//  3. Return 200 with the structured response, or a mapped error status.
func Analyze(an *analyzer.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}
		req.Defaults()
		if req.Input == "" {
			c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: "input must not be empty",
				},
			})
			return
		}

		resp, err := an.Analyze(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps an AuditError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, err error) {
	auditErr, ok := err.(*models.AuditError)
	if !ok {
		auditErr = models.NewAuditError(models.ErrCodeInternal, err.Error(), err)
	}

	c.JSON(mapErrorToStatus(auditErr), models.AnalyzeResponse{
		Success: false,
		Error:   auditErr.ToDetail(),
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.AuditError) int {
	switch e.Code {
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	case models.ErrCodeNavigation:
		return http.StatusBadGateway // 502
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
