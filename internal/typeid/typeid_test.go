package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDsCarryPrefix(t *testing.T) {
	id := NewSeatID()
	assert.True(t, strings.HasPrefix(id, PrefixSeat+"_"))
	require.NoError(t, Validate(id, PrefixSeat))
	assert.Error(t, Validate(id, PrefixSeatMap))
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewSeatMapID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	assert.Error(t, Validate("not an id", PrefixSeat))
}
