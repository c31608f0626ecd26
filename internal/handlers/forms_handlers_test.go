package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/middleware"
	"github.com/participa-tere/app-participa/internal/models"
	"github.com/participa-tere/app-participa/internal/services"
	"github.com/participa-tere/app-participa/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginForm(t *testing.T) {
	router := setupRouter(t, nil)

	t.Run("valid CPF login", func(t *testing.T) {
		w := postJSON(t, router, "/v1/forms/login/validate", models.LoginFormRequest{
			Identifier: "529.982.247-25",
			Password:   "qualquer",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[services.LoginResult](t, w)
		assert.True(t, resp.IsValid)
		assert.Equal(t, utils.FieldModeCPF, resp.Mode)
		assert.Equal(t, "52998224725", resp.LookupKey)
	})

	t.Run("invalid e-mail and no password", func(t *testing.T) {
		w := postJSON(t, router, "/v1/forms/login/validate", models.LoginFormRequest{Identifier: "maria@"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[services.LoginResult](t, w)
		assert.False(t, resp.IsValid)
		assert.Equal(t, []utils.ValidationError{
			{Field: services.FieldIdentifier, Message: utils.MsgIdentifierEmailInvalid},
			{Field: services.FieldPassword, Message: services.MsgPasswordRequired},
		}, resp.Errors)
		assert.Empty(t, resp.LookupKey)
	})
}

func TestValidateRegisterForm(t *testing.T) {
	router := setupRouter(t, nil)

	t.Run("valid", func(t *testing.T) {
		w := postJSON(t, router, "/v1/forms/register/validate", models.RegisterFormRequest{
			Name:            "João Souza",
			Email:           "Joao@Example.com",
			CPF:             "111.444.777-35",
			Phone:           "(21) 2742-3352",
			Password:        "Senha123",
			ConfirmPassword: "Senha123",
			AcceptTerms:     true,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[services.RegisterResult](t, w)
		assert.True(t, resp.IsValid)
		assert.Equal(t, "joao@example.com", resp.Email)
		assert.Equal(t, "11144477735", resp.CPF)
		assert.Equal(t, "111.444.777-35", resp.CPFMasked)
		assert.Equal(t, "+552127423352", resp.Phone)
	})

	t.Run("bad checksum", func(t *testing.T) {
		w := postJSON(t, router, "/v1/forms/register/validate", models.RegisterFormRequest{
			Name:            "João Souza",
			Email:           "joao@example.com",
			CPF:             "111.444.777-36",
			Password:        "Senha123",
			ConfirmPassword: "Senha123",
			AcceptTerms:     true,
		})

		resp := decode[services.RegisterResult](t, w)
		assert.False(t, resp.IsValid)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, services.MsgCPFInvalid, resp.Errors[0].Message)
	})
}

func TestValidateForgotPasswordForm(t *testing.T) {
	router := setupRouter(t, nil)

	w := postJSON(t, router, "/v1/forms/forgot/validate", models.ForgotPasswordFormRequest{Identifier: "MARIA@example.com"})
	resp := decode[services.ForgotPasswordResult](t, w)
	assert.True(t, resp.IsValid)
	assert.Equal(t, utils.FieldModeEmail, resp.Mode)
	assert.Equal(t, "maria@example.com", resp.LookupKey)

	w = postJSON(t, router, "/v1/forms/forgot/validate", models.ForgotPasswordFormRequest{})
	resp = decode[services.ForgotPasswordResult](t, w)
	assert.False(t, resp.IsValid)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, services.MsgIdentifierRequired, resp.Errors[0].Message)
}

func TestValidateResetPasswordForm(t *testing.T) {
	router := setupRouter(t, nil)

	w := postJSON(t, router, "/v1/forms/reset/validate", models.ResetPasswordFormRequest{
		Password:        "NovaSenha1",
		ConfirmPassword: "NovaSenha2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[services.ResetPasswordResult](t, w)
	assert.False(t, resp.IsValid)
	assert.True(t, resp.Password.OK())
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, services.FieldConfirmPassword, resp.Errors[0].Field)
}

func TestForms_MalformedBody(t *testing.T) {
	router := setupRouter(t, nil)

	for _, form := range []string{"login", "register", "forgot", "reset"} {
		t.Run(form, func(t *testing.T) {
			w := postJSON(t, router, "/v1/forms/"+form+"/validate", `{"password": 123`)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, msgInvalidForm, decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestForms_RateLimited(t *testing.T) {
	limiter := services.NewFormRateLimiter(2, logging.Logger)
	router := setupRouter(t, limiter)
	body := models.ForgotPasswordFormRequest{Identifier: "maria@example.com"}

	assert.Equal(t, http.StatusOK, postJSON(t, router, "/v1/forms/forgot/validate", body).Code)
	assert.Equal(t, http.StatusOK, postJSON(t, router, "/v1/forms/login/validate", models.LoginFormRequest{}).Code)

	w := postJSON(t, router, "/v1/forms/forgot/validate", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, middleware.MsgRateLimited, decode[ErrorResponse](t, w).Error)

	// Field helpers are never limited
	assert.Equal(t, http.StatusOK, postJSON(t, router, "/v1/mask/cpf", map[string]string{"value": "1"}).Code)
}

func TestFormHandlers_WithMockValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &services.MockFormValidator{Error: utils.ValidationError{Field: "cpf", Message: "mock"}}
	forms := NewFormHandlers(logging.Logger, mock)

	router := gin.New()
	router.POST("/register", forms.ValidateRegister)

	w := postJSON(t, router, "/register", models.RegisterFormRequest{})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[services.RegisterResult](t, w)
	assert.False(t, resp.IsValid)
	assert.Equal(t, []utils.ValidationError{{Field: "cpf", Message: "mock"}}, resp.Errors)
}
