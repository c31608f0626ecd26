package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ErrorResponse representa uma resposta de erro
// swagger:model
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse representa o estado da API
// swagger:model
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck godoc
// @Summary Verificação de saúde
// @Description Verifica se a API está no ar. A API não possui dependências externas.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "health_check"),
		attribute.String("service", "health"),
	)

	observability.Logger().Debug("HealthCheck called")

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services: map[string]string{
			"api": "healthy",
		},
	})
}

// bindJSON decodes the request body inside a parse_input step span
func bindJSON(ctx context.Context, c *gin.Context, obj interface{}, inputType string) error {
	_, span := utils.TraceInputParsing(ctx, inputType)
	defer span.End()

	if err := c.ShouldBindJSON(obj); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"error.type": "input_parsing",
			"input.type": inputType,
		})
		return err
	}
	return nil
}
