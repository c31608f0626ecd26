package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/models"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/services"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const msgInvalidForm = "corpo da requisição inválido"

// FormHandlers validates the authentication forms on submit
type FormHandlers struct {
	logger    *logging.SafeLogger
	validator services.FormValidator
}

// NewFormHandlers creates a new form handlers instance
func NewFormHandlers(logger *logging.SafeLogger, validator services.FormValidator) *FormHandlers {
	return &FormHandlers{
		logger:    logger,
		validator: validator,
	}
}

func (h *FormHandlers) record(form string, result utils.ValidationResult, fields map[string]interface{}) {
	observability.RecordValidation("form_"+form, result.IsValid)
	if first, ok := result.FirstError(); ok {
		h.logger.Debug("form rejected",
			zap.String("form", form),
			zap.String("first_field", first.Field),
			zap.Int("errors", len(result.Errors)),
			zap.Any("fields", observability.MaskSensitiveData(fields)))
	}
}

// ValidateLogin godoc
// @Summary Valida o formulário de login
// @Description Verifica o identificador (11 dígitos em modo CPF, formato de e-mail caso contrário) e a presença da senha.
// @Tags forms
// @Accept json
// @Produce json
// @Param data body models.LoginFormRequest true "Formulário de login"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /forms/login/validate [post]
func (h *FormHandlers) ValidateLogin(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateLoginForm")
	defer span.End()

	var req models.LoginFormRequest
	if err := bindJSON(ctx, c, &req, "LoginFormRequest"); err != nil {
		h.logger.Warn("invalid form body", zap.String("form", "login"), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidForm})
		return
	}

	result := h.validator.ValidateLogin(ctx, req)
	span.SetAttributes(
		attribute.Bool("validation.valid", result.IsValid),
		attribute.String("identifier.mode", result.Mode.String()),
	)
	h.record("login", result.ValidationResult, map[string]interface{}{
		"identifier": req.Identifier,
		"password":   req.Password,
	})

	c.JSON(http.StatusOK, result)
}

// ValidateRegister godoc
// @Summary Valida o formulário de cadastro
// @Description Verifica nome, e-mail, CPF (tamanho e dígitos verificadores), telefone opcional, requisitos de senha, confirmação e aceite dos termos. Todos os erros são retornados, na ordem do formulário.
// @Tags forms
// @Accept json
// @Produce json
// @Param data body models.RegisterFormRequest true "Formulário de cadastro"
// @Success 200 {object} services.RegisterResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /forms/register/validate [post]
func (h *FormHandlers) ValidateRegister(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateRegisterForm")
	defer span.End()

	var req models.RegisterFormRequest
	if err := bindJSON(ctx, c, &req, "RegisterFormRequest"); err != nil {
		h.logger.Warn("invalid form body", zap.String("form", "register"), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidForm})
		return
	}

	result := h.validator.ValidateRegister(ctx, req)
	span.SetAttributes(
		attribute.Bool("validation.valid", result.IsValid),
		attribute.Int("validation.errors", len(result.Errors)),
	)
	h.record("register", result.ValidationResult, map[string]interface{}{
		"name":         req.Name,
		"email":        req.Email,
		"cpf":          req.CPF,
		"phone":        req.Phone,
		"accept_terms": req.AcceptTerms,
	})

	c.JSON(http.StatusOK, result)
}

// ValidateForgotPassword godoc
// @Summary Valida o formulário de recuperação de senha
// @Description Exige o e-mail ou CPF e retorna a chave pela qual a conta seria buscada.
// @Tags forms
// @Accept json
// @Produce json
// @Param data body models.ForgotPasswordFormRequest true "Formulário de recuperação"
// @Success 200 {object} services.ForgotPasswordResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /forms/forgot/validate [post]
func (h *FormHandlers) ValidateForgotPassword(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateForgotPasswordForm")
	defer span.End()

	var req models.ForgotPasswordFormRequest
	if err := bindJSON(ctx, c, &req, "ForgotPasswordFormRequest"); err != nil {
		h.logger.Warn("invalid form body", zap.String("form", "forgot"), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidForm})
		return
	}

	result := h.validator.ValidateForgotPassword(ctx, req)
	span.SetAttributes(
		attribute.Bool("validation.valid", result.IsValid),
		attribute.String("identifier.mode", result.Mode.String()),
	)
	h.record("forgot", result.ValidationResult, map[string]interface{}{
		"identifier": req.Identifier,
	})

	c.JSON(http.StatusOK, result)
}

// ValidateResetPassword godoc
// @Summary Valida o formulário de redefinição de senha
// @Description Verifica os requisitos da nova senha e a confirmação.
// @Tags forms
// @Accept json
// @Produce json
// @Param data body models.ResetPasswordFormRequest true "Formulário de redefinição"
// @Success 200 {object} services.ResetPasswordResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /forms/reset/validate [post]
func (h *FormHandlers) ValidateResetPassword(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateResetPasswordForm")
	defer span.End()

	var req models.ResetPasswordFormRequest
	if err := bindJSON(ctx, c, &req, "ResetPasswordFormRequest"); err != nil {
		h.logger.Warn("invalid form body", zap.String("form", "reset"), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidForm})
		return
	}

	result := h.validator.ValidateResetPassword(ctx, req)
	span.SetAttributes(attribute.Bool("validation.valid", result.IsValid))
	h.record("reset", result.ValidationResult, map[string]interface{}{
		"password":         req.Password,
		"confirm_password": req.ConfirmPassword,
	})

	c.JSON(http.StatusOK, result)
}
