package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(maxRetries int) *Client {
	return &Client{config: &ClientConfig{
		ConnectionTimeout: time.Second,
		RetryConfig: &RetryConfig{
			MaxRetries: maxRetries,
			BaseDelay:  time.Millisecond,
			MaxDelay:   2 * time.Millisecond,
		},
	}}
}

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{"rpc error: code = Unavailable desc = connection refused", true},
		{"context deadline exceeded", true},
		{"write: broken pipe", true},
		{"NOT_FOUND: no process with id", false},
		{"invalid argument", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isRetryableZeebeError(errors.New(tt.err)), tt.err)
	}
}

func TestMapZeebeError(t *testing.T) {
	err := mapZeebeError(errors.New("context deadline exceeded"), "deploy", 0)
	assert.ErrorIs(t, err, ErrBrokerTimeout)
	assert.Contains(t, err.Error(), "zeebe operation 'deploy'")

	err = mapZeebeError(errors.New("connection refused"), "deploy", 2)
	assert.ErrorIs(t, err, ErrBrokerUnavailable)
	assert.Contains(t, err.Error(), "after 3 attempts")

	err = mapZeebeError(errors.New("permission denied"), "deploy", 0)
	assert.ErrorIs(t, err, ErrBrokerRejected)
}

func TestExecuteWithRetry_RetriesTransientErrors(t *testing.T) {
	calls := 0
	result, err := testClient(3).ExecuteWithRetry(context.Background(), func(context.Context) (interface{}, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("unavailable")
		}
		return "ok", nil
	}, "topology")

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetry_StopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := testClient(3).ExecuteWithRetry(context.Background(), func(context.Context) (interface{}, error) {
		calls++
		return nil, errors.New("invalid argument")
	}, "create instance")

	assert.ErrorIs(t, err, ErrBrokerRejected)
	assert.Equal(t, 1, calls)
}

func TestExecuteWithRetry_GivesUp(t *testing.T) {
	calls := 0
	_, err := testClient(2).ExecuteWithRetry(context.Background(), func(context.Context) (interface{}, error) {
		calls++
		return nil, errors.New("connection reset by peer")
	}, "topology")

	assert.ErrorIs(t, err, ErrBrokerUnavailable)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetry_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := testClient(5)
	c.config.RetryConfig.BaseDelay = time.Hour
	c.config.RetryConfig.MaxDelay = time.Hour

	_, err := c.ExecuteWithRetry(ctx, func(context.Context) (interface{}, error) {
		return nil, errors.New("unavailable")
	}, "topology")

	assert.ErrorIs(t, err, context.Canceled)
}
