package observability

import (
	"context"
	"os"
	"testing"

	"github.com/participa-tere/app-participa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// withTracingConfig swaps the global config for the duration of a test
func withTracingConfig(t *testing.T, enabled bool, endpoint string) {
	t.Helper()

	original := config.AppConfig
	originalProvider := otel.GetTracerProvider()
	config.AppConfig = &config.Config{
		Environment:        "test",
		TracingEnabled:     enabled,
		TracingEndpoint:    endpoint,
		TracingSampleRatio: 1,
	}
	t.Cleanup(func() {
		ShutdownTracer()
		config.AppConfig = original
		otel.SetTracerProvider(originalProvider)
	})
}

func TestInitTracer_Disabled(t *testing.T) {
	withTracingConfig(t, false, "")

	InitTracer()

	assert.Nil(t, tracerProvider)
}

func TestInitTracer_NilConfig(t *testing.T) {
	original := config.AppConfig
	config.AppConfig = nil
	defer func() { config.AppConfig = original }()

	assert.NotPanics(t, InitTracer)
	assert.Nil(t, tracerProvider)
}

func TestInitTracer_Enabled(t *testing.T) {
	// The gRPC connection is established lazily, so an unreachable endpoint still initializes
	withTracingConfig(t, true, "localhost:4317")

	InitTracer()

	assert.NotNil(t, tracerProvider)
	assert.Equal(t, tracerProvider, otel.GetTracerProvider())
}

func TestShutdownTracer_NilProvider(t *testing.T) {
	tracerProvider = nil

	assert.NotPanics(t, ShutdownTracer)
}

func TestShutdownTracer_ResetsProvider(t *testing.T) {
	withTracingConfig(t, true, "localhost:4317")

	InitTracer()
	ShutdownTracer()

	assert.Nil(t, tracerProvider)
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{"full ratio", 1, "root:AlwaysOnSampler"},
		{"above one", 2, "root:AlwaysOnSampler"},
		{"zero", 0, "root:AlwaysOffSampler"},
		{"negative", -0.5, "root:AlwaysOffSampler"},
		{"fraction", 0.25, "root:TraceIDRatioBased{0.25}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := samplerFor(tt.ratio)
			assert.Contains(t, sampler.Description(), "ParentBased")
			assert.Contains(t, sampler.Description(), tt.want)
		})
	}
}

func TestNewTracerProvider_NeverSampleDropsRootSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	res, err := tracingResource(context.Background(), "test")
	require.NoError(t, err)

	provider := newTracerProvider(exporter, res, 0)
	_, span := provider.Tracer("test").Start(context.Background(), "dropped")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
	assert.Empty(t, exporter.GetSpans())
}

func TestNewTracerProvider_FollowsSampledParent(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	res, err := tracingResource(context.Background(), "test")
	require.NoError(t, err)

	provider := newTracerProvider(exporter, res, 0)
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01},
		SpanID:     trace.SpanID{0x02},
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	ctx := trace.ContextWithRemoteSpanContext(context.Background(), parent)
	_, span := provider.Tracer("test").Start(ctx, "kept")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, parent.TraceID(), spans[0].SpanContext.TraceID())

	attrs := spans[0].Resource.Set()
	name, ok := attrs.Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, serviceName, name.AsString())
	env, ok := attrs.Value(attribute.Key("deployment.environment"))
	require.True(t, ok)
	assert.Equal(t, "test", env.AsString())
}

func TestTracingIntegration(t *testing.T) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		t.Skip("Skipping tracing integration test: no OTLP endpoint configured")
	}

	withTracingConfig(t, true, endpoint)

	InitTracer()
	_, span := otel.Tracer("integration").Start(context.Background(), "integration-span")
	span.End()
	ShutdownTracer()
}
