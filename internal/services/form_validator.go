package services

import (
	"context"

	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/models"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.uber.org/zap"
)

// Messages reported for failing form fields
const (
	MsgPasswordRequired    = "Informe sua senha."
	MsgNewPasswordRequired = "Informe a nova senha."
	MsgNameRequired        = "Informe seu nome."
	MsgEmailInvalid        = "Informe um e-mail válido."
	MsgCPFLength           = "CPF deve conter 11 dígitos."
	MsgCPFInvalid          = "CPF inválido. Verifique os dígitos."
	MsgPhoneInvalid        = "Informe um telefone válido."
	MsgPasswordWeak        = "A senha deve ter no mínimo 8 caracteres, com letras maiúsculas, minúsculas e números."
	MsgPasswordMismatch    = "As senhas não coincidem."
	MsgTermsRequired       = "Você precisa aceitar os termos."
	MsgIdentifierRequired  = "Informe seu e-mail ou CPF."
)

// Form field names used in validation errors
const (
	FieldIdentifier      = "identifier"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldCPF             = "cpf"
	FieldPhone           = "phone"
	FieldAcceptTerms     = "accept_terms"
)

// LoginResult is the outcome of validating the login form
type LoginResult struct {
	utils.ValidationResult
	Mode utils.FieldMode `json:"mode"`
	// LookupKey is the value the account would be looked up by, set when the identifier is valid
	LookupKey string `json:"lookup_key,omitempty"`
}

// RegisterResult is the outcome of validating the registration form.
// Normalized values are set only for fields that passed.
type RegisterResult struct {
	utils.ValidationResult
	Name      string                  `json:"name,omitempty"`
	Email     string                  `json:"email,omitempty"`
	CPF       string                  `json:"cpf,omitempty"`
	CPFMasked string                  `json:"cpf_masked,omitempty"`
	Phone     string                  `json:"phone,omitempty"`
	Password  utils.PasswordChecklist `json:"password_checklist"`
}

// ForgotPasswordResult is the outcome of validating the forgot-password form
type ForgotPasswordResult struct {
	utils.ValidationResult
	Mode      utils.FieldMode `json:"mode"`
	LookupKey string          `json:"lookup_key,omitempty"`
}

// ResetPasswordResult is the outcome of validating the reset-password form
type ResetPasswordResult struct {
	utils.ValidationResult
	Password utils.PasswordChecklist `json:"password_checklist"`
}

// FormValidator defines the interface for submit-time form validation
type FormValidator interface {
	ValidateLogin(ctx context.Context, req models.LoginFormRequest) LoginResult
	ValidateRegister(ctx context.Context, req models.RegisterFormRequest) RegisterResult
	ValidateForgotPassword(ctx context.Context, req models.ForgotPasswordFormRequest) ForgotPasswordResult
	ValidateResetPassword(ctx context.Context, req models.ResetPasswordFormRequest) ResetPasswordResult
}

// SubmitValidator implements FormValidator. Unlike the browser, which stops at
// the first failing field, it reports every failing field in form order.
type SubmitValidator struct {
	logger *logging.SafeLogger
}

// NewSubmitValidator creates a new SubmitValidator
func NewSubmitValidator(logger *logging.SafeLogger) *SubmitValidator {
	return &SubmitValidator{
		logger: logger,
	}
}

// ValidateLogin checks the trimmed identifier (11 digits in CPF mode, e-mail
// shape otherwise) and that a password was given.
func (v *SubmitValidator) ValidateLogin(ctx context.Context, req models.LoginFormRequest) LoginResult {
	result := LoginResult{ValidationResult: *utils.NewValidationResult()}

	identifier := utils.TrimFormSpace(req.Identifier)
	mode, key := utils.IdentifierLookupKey(identifier)
	result.Mode = mode

	switch mode {
	case utils.FieldModeCPF:
		if len(key) != utils.CPFLength {
			result.AddError(FieldIdentifier, utils.MsgIdentifierCPFLength)
		}
	default:
		if !utils.IsEmailShaped(identifier) {
			result.AddError(FieldIdentifier, utils.MsgIdentifierEmailInvalid)
		}
	}
	if !result.HasError(FieldIdentifier) {
		result.LookupKey = key
	}

	if req.Password == "" {
		result.AddError(FieldPassword, MsgPasswordRequired)
	}

	v.logger.Debug("login form validated",
		zap.String("mode", mode.String()),
		zap.String("identifier", observability.MaskIdentifier(identifier)),
		zap.Bool("valid", result.IsValid),
		zap.Int("errors", len(result.Errors)))

	return result
}

// ValidateRegister checks name, e-mail, CPF, optional phone, password,
// confirmation and terms, in that order.
func (v *SubmitValidator) ValidateRegister(ctx context.Context, req models.RegisterFormRequest) RegisterResult {
	result := RegisterResult{ValidationResult: *utils.NewValidationResult()}

	name := utils.TrimFormSpace(req.Name)
	if name == "" {
		result.AddError(FieldName, MsgNameRequired)
	} else {
		result.Name = name
	}

	if !utils.IsEmailShaped(req.Email) {
		result.AddError(FieldEmail, MsgEmailInvalid)
	} else {
		result.Email = utils.NormalizeEmail(req.Email)
	}

	cpf := utils.SanitizeDigits(req.CPF)
	switch validity := utils.ValidateCPF(cpf); {
	case validity.Reason == utils.CPFReasonWrongLength:
		result.AddError(FieldCPF, MsgCPFLength)
	case !validity.Valid:
		result.AddError(FieldCPF, MsgCPFInvalid)
	default:
		result.CPF = cpf
		result.CPFMasked = utils.MaskCPF(cpf)
	}

	if utils.TrimFormSpace(req.Phone) != "" {
		phone, err := utils.ParsePhoneNumber(req.Phone)
		if err != nil {
			v.logger.Debug("register phone rejected", zap.Error(err))
			result.AddError(FieldPhone, MsgPhoneInvalid)
		} else {
			result.Phone = phone.Full
		}
	}

	result.Password = utils.CheckPassword(req.Password)
	if !result.Password.OK() {
		result.AddError(FieldPassword, MsgPasswordWeak)
	}
	if req.ConfirmPassword != req.Password {
		result.AddError(FieldConfirmPassword, MsgPasswordMismatch)
	}

	if !req.AcceptTerms {
		result.AddError(FieldAcceptTerms, MsgTermsRequired)
	}

	v.logger.Debug("register form validated",
		zap.String("name", observability.MaskName(name)),
		zap.String("cpf", observability.MaskCPF(cpf)),
		zap.String("email", observability.MaskEmail(req.Email)),
		zap.Bool("valid", result.IsValid),
		zap.Int("errors", len(result.Errors)))

	return result
}

// ValidateForgotPassword requires an identifier and resolves the key an
// account would be looked up by.
func (v *SubmitValidator) ValidateForgotPassword(ctx context.Context, req models.ForgotPasswordFormRequest) ForgotPasswordResult {
	result := ForgotPasswordResult{ValidationResult: *utils.NewValidationResult()}

	identifier := utils.TrimFormSpace(req.Identifier)
	result.Mode, result.LookupKey = utils.IdentifierLookupKey(identifier)
	if identifier == "" {
		result.AddError(FieldIdentifier, MsgIdentifierRequired)
		result.LookupKey = ""
	}

	v.logger.Debug("forgot password form validated",
		zap.String("mode", result.Mode.String()),
		zap.String("identifier", observability.MaskIdentifier(identifier)),
		zap.Bool("valid", result.IsValid))

	return result
}

// ValidateResetPassword checks the new password and its confirmation
func (v *SubmitValidator) ValidateResetPassword(ctx context.Context, req models.ResetPasswordFormRequest) ResetPasswordResult {
	result := ResetPasswordResult{ValidationResult: *utils.NewValidationResult()}

	result.Password = utils.CheckPassword(req.Password)
	switch {
	case utils.TrimFormSpace(req.Password) == "":
		result.AddError(FieldPassword, MsgNewPasswordRequired)
	case !result.Password.OK():
		result.AddError(FieldPassword, MsgPasswordWeak)
	}
	if req.ConfirmPassword != req.Password {
		result.AddError(FieldConfirmPassword, MsgPasswordMismatch)
	}

	v.logger.Debug("reset password form validated",
		zap.Bool("valid", result.IsValid),
		zap.Int("errors", len(result.Errors)))

	return result
}

// MockFormValidator is a FormValidator returning fixed outcomes, for handler tests
type MockFormValidator struct {
	Valid bool
	Error utils.ValidationError
}

func (m *MockFormValidator) result() utils.ValidationResult {
	r := utils.NewValidationResult()
	if !m.Valid {
		r.AddError(m.Error.Field, m.Error.Message)
	}
	return *r
}

// ValidateLogin implements FormValidator for MockFormValidator
func (m *MockFormValidator) ValidateLogin(ctx context.Context, req models.LoginFormRequest) LoginResult {
	return LoginResult{ValidationResult: m.result()}
}

// ValidateRegister implements FormValidator for MockFormValidator
func (m *MockFormValidator) ValidateRegister(ctx context.Context, req models.RegisterFormRequest) RegisterResult {
	return RegisterResult{ValidationResult: m.result()}
}

// ValidateForgotPassword implements FormValidator for MockFormValidator
func (m *MockFormValidator) ValidateForgotPassword(ctx context.Context, req models.ForgotPasswordFormRequest) ForgotPasswordResult {
	return ForgotPasswordResult{ValidationResult: m.result()}
}

// ValidateResetPassword implements FormValidator for MockFormValidator
func (m *MockFormValidator) ValidateResetPassword(ctx context.Context, req models.ResetPasswordFormRequest) ResetPasswordResult {
	return ResetPasswordResult{ValidationResult: m.result()}
}
