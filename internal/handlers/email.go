package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// EmailValidationRequest representa a requisição para validação de email
// swagger:model
// @description Estrutura de entrada contendo o endereço de email a ser validado.
type EmailValidationRequest struct {
	// Endereço de email a ser validado.
	// example: "usuario@exemplo.com"
	Email *string `json:"email" binding:"required"`
}

// EmailValidationResponse representa a resposta da validação de email
// swagger:model
// @description Resultado da verificação de formato local@dominio.tld. Não verifica se o endereço existe.
type EmailValidationResponse struct {
	// Indica se o email tem formato válido.
	Valid bool `json:"valid"`
	// Mensagem de retorno.
	Message string `json:"message"`
	// Parte local do email (antes do @)
	LocalPart string `json:"local_part,omitempty"`
	// Domínio do email (após o @)
	Domain string `json:"domain,omitempty"`
	// Email normalizado (sem espaços, lowercase)
	Normalized string `json:"normalized,omitempty"`
}

// ValidateEmailAddress godoc
// @Summary Valida formato de email
// @Description Verifica se o endereço, sem espaços nas pontas, tem o formato local@dominio.tld com sufixo de pelo menos 2 caracteres.
// @Tags validation
// @Accept json
// @Produce json
// @Param data body EmailValidationRequest true "Email a ser validado"
// @Success 200 {object} EmailValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/email [post]
func ValidateEmailAddress(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateEmailAddress")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_email_address"),
		attribute.String("service", "email_validation"),
	)

	var req EmailValidationRequest
	if err := bindJSON(ctx, c, &req, "EmailValidationRequest"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo email é obrigatório"})
		return
	}

	email := *req.Email
	logger := logging.Logger.With(zap.String("email", observability.MaskEmail(email)))
	logger.Debug("ValidateEmailAddress called")

	_, validationSpan, done := utils.TraceValidationOperation(ctx, "email", "email")
	valid := utils.IsEmailShaped(email)
	utils.AddSpanAttribute(validationSpan, "validation.valid", valid)
	done()

	observability.RecordValidation("email", valid)

	if !valid {
		c.JSON(http.StatusOK, EmailValidationResponse{
			Valid:   false,
			Message: "Informe um e-mail válido (ex.: nome@dominio.com).",
		})
		return
	}

	normalized := utils.NormalizeEmail(email)
	at := strings.LastIndex(normalized, "@")
	c.JSON(http.StatusOK, EmailValidationResponse{
		Valid:      true,
		Message:    "email válido",
		LocalPart:  normalized[:at],
		Domain:     normalized[at+1:],
		Normalized: normalized,
	})
}
