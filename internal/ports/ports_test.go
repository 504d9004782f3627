package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker implements HealthChecker for testing.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string {
	return s.name
}

func (s *stubChecker) Check(ctx context.Context) error {
	return s.err
}

func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry()

	require.NotNil(t, registry)
	assert.Empty(t, registry.checkers)
}

func TestRegister_Success(t *testing.T) {
	registry := NewHealthRegistry()
	checker := &stubChecker{name: "quote-service"}

	err := registry.Register(checker)

	require.NoError(t, err)
	assert.Len(t, registry.checkers, 1)
	assert.Equal(t, "quote-service", registry.checkers[0].Name())
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-service"}))

	err := registry.Register(&stubChecker{name: "quote-service"})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-service")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	registry := NewHealthRegistry()

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll_AllHealthy(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-service"}))
	require.NoError(t, registry.Register(&stubChecker{name: "reactor"}))

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["quote-service"].Status)
	assert.Equal(t, HealthStatusHealthy, result.Checks["reactor"].Status)
	assert.Empty(t, result.Checks["quote-service"].Message)
}

func TestCheckAll_OneUnhealthy(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-service", err: errors.New("connection timeout")}))
	require.NoError(t, registry.Register(&stubChecker{name: "reactor"}))

	result := registry.CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["quote-service"].Status)
	assert.Equal(t, "connection timeout", result.Checks["quote-service"].Message)
	assert.Equal(t, HealthStatusHealthy, result.Checks["reactor"].Status)
}

// contextAwareChecker respects context cancellation.
type contextAwareChecker struct {
	name string
}

func (c *contextAwareChecker) Name() string {
	return c.name
}

func (c *contextAwareChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&contextAwareChecker{name: "slow-service"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow-service"].Message, "context canceled")
}
