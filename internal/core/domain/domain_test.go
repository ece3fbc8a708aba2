package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(MintOrigin))
	assert.True(t, IsSentinel(BurnAccount))
	assert.False(t, IsSentinel(uuid.New()))
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.NotEqual(t, MintOrigin, BurnAccount)
}

func TestTotalSharesRepresentsFullOwnership(t *testing.T) {
	// 10,000 shares at 0.01% each == 100%.
	assert.Equal(t, int64(10_000), TotalShares)
}
