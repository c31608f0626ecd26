package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// IdentifierRequest representa o conteúdo atual do campo "e-mail ou CPF"
// swagger:model
type IdentifierRequest struct {
	// example: "529.982"
	Value *string `json:"value" binding:"required"`
}

// ClassifyIdentifier godoc
// @Summary Classifica o campo de login
// @Description Decide se o valor digitado é um e-mail ou um CPF, aplica a máscara de CPF quando for o caso e retorna a mensagem de validação em tempo real.
// @Tags identifier
// @Accept json
// @Produce json
// @Param data body IdentifierRequest true "Valor do campo identificador"
// @Success 200 {object} utils.IdentifierCheck
// @Failure 400 {object} ErrorResponse
// @Router /identifier/classify [post]
func ClassifyIdentifier(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ClassifyIdentifier")
	defer span.End()

	var req IdentifierRequest
	if err := bindJSON(ctx, c, &req, "IdentifierRequest"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo value é obrigatório"})
		return
	}

	_, logicSpan := utils.TraceBusinessLogic(ctx, "classify_identifier")
	check := utils.CheckIdentifier(*req.Value)
	logicSpan.End()

	span.SetAttributes(
		attribute.String("identifier.mode", check.Mode.String()),
		attribute.Bool("validation.valid", check.Valid),
	)
	observability.FieldClassifications.WithLabelValues(check.Mode.String()).Inc()

	c.JSON(http.StatusOK, check)
}
