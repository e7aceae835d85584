package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelevantField(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{key: "correlation_id", expected: true},
		{key: "status_code", expected: true},
		{key: "store_id", expected: true},
		{key: "collaborator_id", expected: true},
		{key: "absence_date", expected: true},
		{key: "user_id", expected: true},
		{key: "cron_schedule", expected: false},
		{key: "timezone", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, isRelevantField(tt.key))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}
