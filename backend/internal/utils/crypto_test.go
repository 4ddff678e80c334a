package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToken(t *testing.T) {
	a := HashToken("refresh-token-a")

	assert.Len(t, a, 64)
	assert.Equal(t, a, HashToken("refresh-token-a"), "hash must be stable across calls")
	assert.NotEqual(t, a, HashToken("refresh-token-b"))
	assert.NotContains(t, a, "refresh-token-a")
}
