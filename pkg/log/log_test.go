package log

import (
	"context"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFromContextWithName(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix)
	}, funcr.Options{})

	ctx := ContextWithLogger(context.Background(), logger)
	GetLoggerFromContextWithName(ctx, "permutations").Info("hello")
	GetLoggerFromContextWithName(ctx, "").Info("hello")

	require.Len(t, lines, 2)
	assert.Equal(t, "permutations", lines[0])
	assert.Equal(t, "", lines[1])
}

func TestGetLoggerFromContextWithoutLogger(t *testing.T) {
	logger := GetLoggerFromContextWithName(context.Background(), "permutations")
	assert.False(t, logger.Enabled())

	//lint:ignore SA1012 a nil context is tolerated
	logger = GetLoggerFromContextWithName(nil, "permutations")
	assert.False(t, logger.Enabled())
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger(1)
	assert.True(t, logger.V(1).Enabled())
	assert.False(t, logger.V(2).Enabled())

	// out of range falls back to info only
	logger = GetLogger(5)
	assert.True(t, logger.Enabled())
	assert.False(t, logger.V(1).Enabled())
}
