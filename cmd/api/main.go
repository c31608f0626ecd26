package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/participa-tere/app-participa/internal/config"
	"github.com/participa-tere/app-participa/internal/handlers"
	"github.com/participa-tere/app-participa/internal/logging"
	"github.com/participa-tere/app-participa/internal/middleware"
	"github.com/participa-tere/app-participa/internal/observability"
	"github.com/participa-tere/app-participa/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/participa-tere/app-participa/docs"
)

// @title           Participa Terê API
// @version         1.0
// @description     API de validação dos campos de identificação do Participa Terê: máscara e validação de CPF, máscara e validação de telefone, formato de e-mail, classificação do campo "e-mail ou CPF" e validação dos formulários de login, cadastro e recuperação de senha. A API não armazena nenhum dado.

// @contact.name   Prefeitura de Teresópolis

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name validation
// @tag.description Validação de CPF, e-mail e telefone

// @tag.name mask
// @tag.description Sanitização e máscaras de campos

// @tag.name identifier
// @tag.description Campo de login "e-mail ou CPF"

// @tag.name password
// @tag.description Requisitos de senha

// @tag.name forms
// @tag.description Validação de formulários no envio

// @tag.name health
// @tag.description Verificação de saúde

func main() {
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Logger.Sync()

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	observability.InitTracer()
	defer observability.ShutdownTracer()

	services.InitFormRateLimiter(config.AppConfig.FormRateLimitPerMinute, logging.Logger)
	prometheus.MustRegister(services.FormRateLimiterInstance.TokensCollector())

	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	formHandlers := handlers.NewFormHandlers(logging.Logger, services.NewSubmitValidator(logging.Logger))
	router := newRouter(config.AppConfig, formHandlers, services.FormRateLimiterInstance)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  config.AppConfig.ReadTimeout,
		WriteTimeout: config.AppConfig.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}

// newRouter builds the engine with the middleware chain, the /v1 API,
// /metrics and the Swagger UI
func newRouter(cfg *config.Config, forms *handlers.FormHandlers, limiter middleware.FormLimiter) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.New(corsConfig(cfg)),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterRoutes(router.Group("/v1"), forms, limiter)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// corsConfig builds the CORS policy from the configured origins
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = append(c.AllowHeaders, "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID", "Retry-After"}
	if cfg.AllowsAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}
