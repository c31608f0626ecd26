package services

import (
	"context"
	"sync"
	"time"

	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// RateLimiter implements a token bucket rate limiter
type RateLimiter struct {
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
	logger     *logging.SafeLogger
}

// NewRateLimiter creates a new token bucket rate limiter
func NewRateLimiter(maxTokens int, refillRate time.Duration, logger *logging.SafeLogger) *RateLimiter {
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
		logger:     logger,
	}
}

// Allow checks if a request should be allowed based on rate limiting
func (rl *RateLimiter) Allow(ctx context.Context, operation string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefill)

	tokensToAdd := int(elapsed / rl.refillRate)
	if tokensToAdd > 0 {
		rl.tokens += tokensToAdd
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
			rl.lastRefill = now
		} else {
			// keep the remainder so partial intervals are not lost
			rl.lastRefill = rl.lastRefill.Add(time.Duration(tokensToAdd) * rl.refillRate)
		}

		rl.logger.Debug("rate limiter tokens refilled",
			zap.String("operation", operation),
			zap.Int("tokens_added", tokensToAdd),
			zap.Int("current_tokens", rl.tokens),
			zap.Int("max_tokens", rl.maxTokens))
	}

	if rl.tokens > 0 {
		rl.tokens--
		rl.logger.Debug("rate limiter allowed request",
			zap.String("operation", operation),
			zap.Int("remaining_tokens", rl.tokens))
		return true
	}

	rl.logger.Warn("rate limiter rejected request",
		zap.String("operation", operation),
		zap.Int("tokens", rl.tokens),
		zap.Int("max_tokens", rl.maxTokens))
	return false
}

// GetStatus returns the current status of the rate limiter
func (rl *RateLimiter) GetStatus() (int, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return rl.tokens, rl.maxTokens
}

// FormRateLimiter guards the form validation endpoints with one global bucket
type FormRateLimiter struct {
	globalLimiter *RateLimiter
	logger        *logging.SafeLogger
}

// NewFormRateLimiter creates a limiter allowing maxRequestsPerMinute form submissions
func NewFormRateLimiter(maxRequestsPerMinute int, logger *logging.SafeLogger) *FormRateLimiter {
	// one token every (60 seconds / maxRequestsPerMinute)
	refillRate := time.Minute / time.Duration(maxRequestsPerMinute)

	return &FormRateLimiter{
		globalLimiter: NewRateLimiter(maxRequestsPerMinute, refillRate, logger),
		logger:        logger,
	}
}

// ShouldAllow reports whether a submission of the given form may be validated.
// The second value names the scope that rejected it.
func (m *FormRateLimiter) ShouldAllow(ctx context.Context, form string) (bool, string) {
	if !m.globalLimiter.Allow(ctx, "form_"+form) {
		return false, "global"
	}
	return true, ""
}

// GetGlobalLimiterStatus returns the current status of the global rate limiter
func (m *FormRateLimiter) GetGlobalLimiterStatus() (int, int) {
	return m.globalLimiter.GetStatus()
}

// TokensCollector exposes the tokens left in the global bucket as a gauge.
// The caller registers it.
func (m *FormRateLimiter) TokensCollector() prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "app_participa_form_rate_limit_tokens",
			Help: "Tokens left in the global form submission bucket",
		},
		func() float64 {
			tokens, _ := m.GetGlobalLimiterStatus()
			return float64(tokens)
		},
	)
}

// FormRateLimiterInstance is the process-wide form limiter
var FormRateLimiterInstance *FormRateLimiter

// InitFormRateLimiter initializes the global form rate limiter
func InitFormRateLimiter(maxRequestsPerMinute int, logger *logging.SafeLogger) {
	FormRateLimiterInstance = NewFormRateLimiter(maxRequestsPerMinute, logger)
	logger.Info("form rate limiter initialized",
		zap.Int("max_requests_per_minute", maxRequestsPerMinute))
}
