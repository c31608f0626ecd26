package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MaskRequest representa um valor digitado em um campo com máscara
// swagger:model
// @description Valor bruto do campo, com ou sem máscara. Vazio é permitido.
type MaskRequest struct {
	// example: "52998224725"
	Value *string `json:"value" binding:"required"`
}

// MaskResponse representa o valor sanitizado e mascarado
// swagger:model
type MaskResponse struct {
	// Apenas os dígitos do valor informado.
	Digits string `json:"digits"`
	// Valor formatado para exibição. Ausente em /sanitize/digits.
	Masked string `json:"masked,omitempty"`
}

// SanitizeDigits godoc
// @Summary Remove caracteres não numéricos
// @Description Mantém apenas os dígitos ASCII 0-9, na ordem original.
// @Tags mask
// @Accept json
// @Produce json
// @Param data body MaskRequest true "Valor a ser sanitizado"
// @Success 200 {object} MaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /sanitize/digits [post]
func SanitizeDigits(c *gin.Context) {
	handleMask(c, "SanitizeDigits", nil)
}

// MaskCPF godoc
// @Summary Aplica máscara de CPF
// @Description Formata progressivamente como ###.###.###-##, truncando em 11 dígitos.
// @Tags mask
// @Accept json
// @Produce json
// @Param data body MaskRequest true "Valor digitado no campo CPF"
// @Success 200 {object} MaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /mask/cpf [post]
func MaskCPF(c *gin.Context) {
	handleMask(c, "MaskCPF", utils.MaskCPF)
}

// MaskPhone godoc
// @Summary Aplica máscara de telefone
// @Description Formata progressivamente como (DD) DDDD-DDDD, ou (DD) DDDDD-DDDD com 11 dígitos.
// @Tags mask
// @Accept json
// @Produce json
// @Param data body MaskRequest true "Valor digitado no campo telefone"
// @Success 200 {object} MaskResponse
// @Failure 400 {object} ErrorResponse
// @Router /mask/phone [post]
func MaskPhone(c *gin.Context) {
	handleMask(c, "MaskPhone", utils.MaskPhone)
}

func handleMask(c *gin.Context, operation string, mask func(string) string) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), operation)
	defer span.End()

	span.SetAttributes(attribute.String("operation", operation))

	var req MaskRequest
	if err := bindJSON(ctx, c, &req, "MaskRequest"); err != nil {
		logging.Logger.Debug("invalid mask request", zap.String("operation", operation), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo value é obrigatório"})
		return
	}

	ctx, logicSpan := utils.TraceBusinessLogic(ctx, operation)
	resp := MaskResponse{Digits: utils.SanitizeDigits(*req.Value)}
	if mask != nil {
		resp.Masked = mask(resp.Digits)
	}
	utils.AddSpanAttribute(logicSpan, "digits.length", len(resp.Digits))
	logicSpan.End()

	_, serializeSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, resp)
	serializeSpan.End()
}
