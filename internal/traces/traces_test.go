package traces

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/banco-digital/banco/config"
)

func TestSetupOTelSDKDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := SetupOTelSDK(context.Background(), "Banco", config.TelemetryConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestSetupOTelSDKEnabled(t *testing.T) {
	shutdown, err := SetupOTelSDK(context.Background(), "Banco", config.TelemetryConfig{
		Enabled:  true,
		Endpoint: "localhost:4318",
		Insecure: true,
	})
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, shutdown(ctx))
}

func TestNewTracerProvider(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewTracerProvider("Banco", sdktrace.WithSyncer(exporter))

	_, span := tp.Tracer("test").Start(context.Background(), "Deposit")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "Deposit", spans[0].Name)
	assert.Contains(t, spans[0].Resource.Attributes(), attribute.String("service.name", "Banco"))
}
