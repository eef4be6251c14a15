package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatheractivity.app/internal/mocks"
	"weatheractivity.app/internal/ports"
)

func TestForecastProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testForecastProvider{
		name: "test-provider",
		response: &ports.ForecastReport{
			LocationName: "TestCity",
			Current:      ports.CurrentConditions{TemperatureC: 22.0, Condition: ports.Condition{Text: "Sunny"}},
			Days:         make([]ports.ForecastDayReport, 5),
		},
	}
	testLogger := &testLogger{}

	decorator := NewForecastProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetForecast(context.Background(), "TestCity")

	require.NoError(t, err)
	assert.Equal(t, 22.0, result.Current.TemperatureC)

	require.Len(t, testLogger.entries, 2)

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "TestCity", requestLog.fields["query"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, "TestCity", responseLog.fields["location"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, "Sunny", responseLog.fields["condition"])
	assert.Equal(t, 5, responseLog.fields["forecast_days"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestForecastProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	providerErr := &ports.ProviderFailure{StatusCode: 400, Code: 1006, Message: "No matching location found."}
	testProvider := &testForecastProvider{name: "error-provider", err: providerErr}
	testLogger := &testLogger{}

	decorator := NewForecastProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetForecast(context.Background(), "Atlantis")

	assert.Nil(t, result)
	assert.Same(t, providerErr, err)

	require.Len(t, testLogger.entries, 2)
	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "error-provider", errorLog.fields["provider"])
	assert.Equal(t, "Atlantis", errorLog.fields["query"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, providerErr.Error(), errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestForecastProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testForecastProvider{
		name:     "slow-provider",
		response: &ports.ForecastReport{LocationName: "SlowCity"},
		delay:    10 * time.Millisecond,
	}
	testLogger := &testLogger{}

	decorator := NewForecastProviderLoggingDecorator(testProvider, testLogger)

	_, err := decorator.GetForecast(context.Background(), "SlowCity")
	require.NoError(t, err)

	require.Len(t, testLogger.entries, 2)
	duration, ok := testLogger.entries[1].fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestForecastProviderMetricsDecorator(t *testing.T) {
	metrics := mocks.NewLookupMetrics(t)
	metrics.EXPECT().RecordProviderCall("weatherapi", true, mock.AnythingOfType("time.Duration")).Once()
	metrics.EXPECT().RecordProviderCall("weatherapi", false, mock.AnythingOfType("time.Duration")).Once()

	ok := NewForecastProviderMetricsDecorator(&testForecastProvider{name: "weatherapi", response: &ports.ForecastReport{}}, metrics)
	_, err := ok.GetForecast(context.Background(), "London")
	assert.NoError(t, err)

	failing := NewForecastProviderMetricsDecorator(&testForecastProvider{name: "weatherapi", err: errors.New("timeout")}, metrics)
	_, err = failing.GetForecast(context.Background(), "London")
	assert.Error(t, err)

	assert.Equal(t, "weatherapi", failing.GetProviderName())
}

type testForecastProvider struct {
	name     string
	response *ports.ForecastReport
	err      error
	delay    time.Duration
}

func (p *testForecastProvider) GetForecast(ctx context.Context, query string) (*ports.ForecastReport, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func (p *testForecastProvider) GetProviderName() string {
	return p.name
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func BenchmarkForecastProviderLoggingDecorator(b *testing.B) {
	testProvider := &testForecastProvider{
		name:     "benchmark-provider",
		response: &ports.ForecastReport{LocationName: "BenchmarkCity"},
	}
	decorator := NewForecastProviderLoggingDecorator(testProvider, &testLogger{})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = decorator.GetForecast(context.Background(), "BenchmarkCity")
		}
	})
}
