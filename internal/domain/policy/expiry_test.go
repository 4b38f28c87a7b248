package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCutoffs(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-24*time.Hour), FixedTTL{TTL: 24 * time.Hour}.Cutoff(now))
	assert.Equal(t, now, ExplicitExpiry{}.Cutoff(now))
	assert.Equal(t, now.Add(-24*time.Hour), GraceWindow{Window: 24 * time.Hour}.Cutoff(now))
}
