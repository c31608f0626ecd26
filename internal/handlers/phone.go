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

// PhoneValidationRequest representa a requisição para validação de telefone
// swagger:model
// @description Telefone com ou sem máscara. Sem DDI, é interpretado como brasileiro.
type PhoneValidationRequest struct {
	// example: "(21) 98765-4321"
	Phone *string `json:"phone" binding:"required"`
}

// PhoneValidationResponse representa a resposta da validação de telefone
// swagger:model
// @description Resultado da validação, contendo a decomposição (DDI, DDD, número) quando válida.
type PhoneValidationResponse struct {
	// Indica se o número é válido.
	Valid bool `json:"valid"`
	// Mensagem de retorno.
	Message string `json:"message,omitempty"`
	// DDI (código do país)
	DDI string `json:"ddi,omitempty"`
	// DDD (código de área)
	DDD string `json:"ddd,omitempty"`
	// Número do assinante
	Numero string `json:"numero,omitempty"`
	// Representação E.164 do número
	E164 string `json:"e164,omitempty"`
	// Região ISO 3166-1 alpha-2
	Region string `json:"region,omitempty"`
	// Número formatado com a máscara do formulário, para números brasileiros
	Masked string `json:"masked,omitempty"`
}

// ValidatePhoneNumber godoc
// @Summary Valida número de telefone
// @Description Valida DDI, DDD e número. Números sem DDI são tratados como brasileiros.
// @Tags validation
// @Accept json
// @Produce json
// @Param data body PhoneValidationRequest true "Telefone a ser validado"
// @Success 200 {object} PhoneValidationResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/phone [post]
func ValidatePhoneNumber(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidatePhoneNumber")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "validate_phone_number"),
		attribute.String("service", "phone_validation"),
	)

	var req PhoneValidationRequest
	if err := bindJSON(ctx, c, &req, "PhoneValidationRequest"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo phone é obrigatório"})
		return
	}

	_, parseSpan := utils.TraceBusinessLogic(ctx, "parse_phone_number")
	phone, err := utils.ParsePhoneNumber(*req.Phone)
	if err != nil {
		utils.RecordErrorInSpan(parseSpan, err, map[string]interface{}{
			"validation.valid": false,
		})
		parseSpan.End()
		observability.RecordValidation("phone", false)
		logging.Logger.Debug("telefone inválido", zap.Error(err))
		c.JSON(http.StatusOK, PhoneValidationResponse{
			Valid:   false,
			Message: "Informe um telefone válido.",
		})
		return
	}
	utils.AddSpanAttribute(parseSpan, "phone.region", phone.Region)
	parseSpan.End()

	observability.RecordValidation("phone", true)

	resp := PhoneValidationResponse{
		Valid:   true,
		Message: "telefone válido",
		DDI:     phone.DDI,
		DDD:     phone.DDD,
		Numero:  phone.Valor,
		E164:    phone.Full,
		Region:  phone.Region,
	}
	if phone.DDI == "55" {
		resp.Masked = phone.NationalDisplay()
	}
	c.JSON(http.StatusOK, resp)
}
