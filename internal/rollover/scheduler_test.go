package rollover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

func TestNewSchedulerValidatesDependencies(t *testing.T) {
	_, err := NewScheduler(Config{})
	assert.Error(t, err)

	_, err = NewScheduler(Config{Logger: &mockLogger{}})
	assert.Error(t, err)
}

func TestSchedulerStartStop(t *testing.T) {
	s, err := NewScheduler(Config{
		Logger:     &mockLogger{},
		OnRollover: func() {},
	})
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s, err := NewScheduler(Config{
		Logger:     &mockLogger{},
		Spec:       "not a cron spec",
		OnRollover: func() {},
	})
	require.NoError(t, err)

	assert.Error(t, s.Start(context.Background()))
}
