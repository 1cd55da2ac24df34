package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
)

type validationResponse struct {
	Code       string                 `json:"error_code"`
	Message    string                 `json:"message"`
	Violations []inspection.Violation `json:"violations"`
}

// ValidationFailed writes every broken rule at once; the list is never
// truncated to the first failure.
func ValidationFailed(c *gin.Context, violations []inspection.Violation) {
	c.JSON(http.StatusBadRequest, validationResponse{
		Code:       "validation_failed",
		Message:    "The submitted inspection data is invalid.",
		Violations: violations,
	})
}
