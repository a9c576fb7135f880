package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("payment completed", "actor", "Bobby", "amount", 5.0)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "payment completed", entry["msg"])
	assert.Equal(t, "Bobby", entry["actor"])
	assert.Equal(t, 5.0, entry["amount"])
}

func TestInitLogger_Writer(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLogger(&buf, "info", "json")
	slog.Info("user created", "username", "Bobby")

	assert.Contains(t, buf.String(), `"msg":"user created"`)
	assert.Contains(t, buf.String(), `"username":"Bobby"`)
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", "text")

	logger.Debug("friend added", "actor", "Bobby")
	assert.Contains(t, buf.String(), "friend added")
	assert.Contains(t, buf.String(), "Bobby")
}

func TestMetrics_RecordPayment(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordPayment("balance", "success", 5)
	m.RecordPayment("card", "failed", 50)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Payments.WithLabelValues("balance", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Payments.WithLabelValues("card", "failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.PaymentAmount))
}

func TestInitTracing(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := InitTracing(context.Background(), "minivenmo-test", "")
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestEndpointURL(t *testing.T) {
	assert.Equal(t, "http://collector:4318", EndpointURL("http://collector:4318"))
	assert.Equal(t, "https://collector:4318/v1/traces", EndpointURL("https://collector:4318/v1/traces"))
	assert.Equal(t, "http://localhost:4318", EndpointURL("localhost:4318"))
}

func TestInitTracing_WithEndpoint(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := InitTracing(context.Background(), "minivenmo-test", "http://127.0.0.1:4318")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}
