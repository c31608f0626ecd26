package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CPFValidationRequest representa a requisição para validação de CPF
// swagger:model
// @description CPF com ou sem máscara.
type CPFValidationRequest struct {
	// example: "529.982.247-25"
	CPF *string `json:"cpf" binding:"required"`
}

// CPFValidationResponse representa a resposta da validação de CPF
// swagger:model
// @description Resultado da validação estrutural (dígitos verificadores). Não consulta a Receita Federal.
type CPFValidationResponse struct {
	Valid bool `json:"valid"`
	// Motivo da rejeição: wrong_length, repeated_digits, first_check_digit ou second_check_digit.
	Reason utils.CPFInvalidReason `json:"reason,omitempty"`
	// Mensagem de retorno.
	Message string `json:"message"`
	// CPF sanitizado, apenas quando válido.
	Digits string `json:"digits,omitempty"`
	// CPF formatado, apenas quando válido.
	Masked string `json:"masked,omitempty"`
}

// cpfReasonMessages maps each rejection reason to its user-facing message
var cpfReasonMessages = map[utils.CPFInvalidReason]string{
	utils.CPFReasonWrongLength:      "CPF deve conter 11 dígitos.",
	utils.CPFReasonRepeatedDigits:   "CPF inválido. Verifique os dígitos.",
	utils.CPFReasonFirstCheckDigit:  "CPF inválido. Verifique os dígitos.",
	utils.CPFReasonSecondCheckDigit: "CPF inválido. Verifique os dígitos.",
}

// ValidateCPFNumber godoc
// @Summary Valida CPF
// @Description Verifica tamanho, dígitos repetidos e os dois dígitos verificadores de um CPF.
// @Tags validation
// @Accept json
// @Produce json
// @Param data body CPFValidationRequest true "CPF a ser validado"
// @Success 200 {object} CPFValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/cpf [post]
func ValidateCPFNumber(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateCPFNumber")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_cpf"),
		attribute.String("service", "cpf_validation"),
	)

	var req CPFValidationRequest
	if err := bindJSON(ctx, c, &req, "CPFValidationRequest"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo cpf é obrigatório"})
		return
	}

	cpf := *req.CPF
	logger := logging.Logger.With(zap.String("cpf", observability.MaskCPF(cpf)))

	_, validationSpan, done := utils.TraceValidationOperation(ctx, "cpf", "cpf")
	validity := utils.ValidateCPF(cpf)
	utils.AddSpanAttribute(validationSpan, "validation.valid", validity.Valid)
	if !validity.Valid {
		utils.AddSpanAttribute(validationSpan, "validation.reason", string(validity.Reason))
	}
	done()

	observability.RecordValidation("cpf", validity.Valid)

	if !validity.Valid {
		logger.Debug("CPF rejected", zap.String("reason", string(validity.Reason)))
		c.JSON(http.StatusOK, CPFValidationResponse{
			Valid:   false,
			Reason:  validity.Reason,
			Message: cpfReasonMessages[validity.Reason],
		})
		return
	}

	digits := utils.SanitizeDigits(cpf)
	logger.Debug("CPF accepted")
	c.JSON(http.StatusOK, CPFValidationResponse{
		Valid:   true,
		Message: "CPF válido",
		Digits:  digits,
		Masked:  utils.MaskCPF(digits),
	})
}
