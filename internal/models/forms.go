package models

// LoginFormRequest represents the login form as submitted
// swagger:model
// @description Campos do formulário de login. O identificador aceita e-mail ou CPF.
type LoginFormRequest struct {
	// E-mail ou CPF, mascarado ou não.
	// example: "529.982.247-25"
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterFormRequest represents the registration form as submitted
// swagger:model
// @description Campos do formulário de cadastro.
type RegisterFormRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// example: "529.982.247-25"
	CPF string `json:"cpf"`
	// Opcional.
	// example: "(21) 98765-4321"
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AcceptTerms     bool   `json:"accept_terms"`
}

// ForgotPasswordFormRequest represents the forgot-password form as submitted
// swagger:model
type ForgotPasswordFormRequest struct {
	Identifier string `json:"identifier"`
}

// ResetPasswordFormRequest represents the reset-password form as submitted
// swagger:model
type ResetPasswordFormRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
