package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/models"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/utils"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MsgRateLimited is returned with 429 responses
const MsgRateLimited = "muitas requisições, tente novamente em instantes"

// FormLimiter decides whether a form submission may proceed
type FormLimiter interface {
	ShouldAllow(ctx context.Context, form string) (bool, string)
}

// RateLimit rejects form submissions with 429 once the limiter runs dry.
// A nil limiter lets every request through.
func RateLimit(limiter FormLimiter, form string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, scope := limiter.ShouldAllow(c.Request.Context(), form)
		if !allowed {
			observability.RateLimitRejections.WithLabelValues(scope).Inc()

			span := trace.SpanFromContext(c.Request.Context())
			utils.RecordErrorInSpan(span, models.ErrRateLimitExceeded, map[string]interface{}{
				"ratelimit.form":  form,
				"ratelimit.scope": scope,
			})
			span.SetStatus(codes.Error, models.ErrRateLimitExceeded.Error())

			observability.Logger().Warn("form submission rate limited",
				zap.Error(models.ErrRateLimitExceeded),
				zap.String("form", form),
				zap.String("scope", scope),
				zap.String("ip", c.ClientIP()))

			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{"error": MsgRateLimited})
			c.Abort()
			return
		}

		c.Next()
	}
}
