package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
)

// PasswordCheckRequest representa a senha digitada
// swagger:model
type PasswordCheckRequest struct {
	Password *string `json:"password" binding:"required"`
}

// PasswordCheckResponse representa a lista de requisitos da senha
// swagger:model
type PasswordCheckResponse struct {
	Valid     bool                    `json:"valid"`
	Checklist utils.PasswordChecklist `json:"checklist"`
}

// CheckPassword godoc
// @Summary Verifica requisitos de senha
// @Description Avalia cada requisito: ao menos 8 caracteres, letra minúscula, letra maiúscula e número. A senha não é registrada.
// @Tags password
// @Accept json
// @Produce json
// @Param data body PasswordCheckRequest true "Senha a ser verificada"
// @Success 200 {object} PasswordCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /password/check [post]
func CheckPassword(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CheckPassword")
	defer span.End()

	var req PasswordCheckRequest
	if err := bindJSON(ctx, c, &req, "PasswordCheckRequest"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "campo password é obrigatório"})
		return
	}

	checklist := utils.CheckPassword(*req.Password)
	utils.AddSpanAttribute(span, "validation.valid", checklist.OK())

	c.JSON(http.StatusOK, PasswordCheckResponse{
		Valid:     checklist.OK(),
		Checklist: checklist,
	})
}
