package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/middleware"
)

// RegisterRoutes mounts the validation API on a /v1 router group.
// Form endpoints share the given limiter.
func RegisterRoutes(v1 *gin.RouterGroup, forms *FormHandlers, limiter middleware.FormLimiter) {
	v1.GET("/health", HealthCheck)

	v1.POST("/sanitize/digits", SanitizeDigits)
	v1.POST("/mask/cpf", MaskCPF)
	v1.POST("/mask/phone", MaskPhone)

	validate := v1.Group("/validate")
	{
		validate.POST("/cpf", ValidateCPFNumber)
		validate.POST("/email", ValidateEmailAddress)
		validate.POST("/phone", ValidatePhoneNumber)
	}

	v1.POST("/identifier/classify", ClassifyIdentifier)
	v1.POST("/password/check", CheckPassword)

	formGroup := v1.Group("/forms")
	{
		formGroup.POST("/login/validate", middleware.RateLimit(limiter, "login"), forms.ValidateLogin)
		formGroup.POST("/register/validate", middleware.RateLimit(limiter, "register"), forms.ValidateRegister)
		formGroup.POST("/forgot/validate", middleware.RateLimit(limiter, "forgot"), forms.ValidateForgotPassword)
		formGroup.POST("/reset/validate", middleware.RateLimit(limiter, "reset"), forms.ValidateResetPassword)
	}
}
