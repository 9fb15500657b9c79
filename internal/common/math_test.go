package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-5, 0, 100))
	assert.Equal(t, 100, ClampInt(120, 0, 100))
	assert.Equal(t, 50, ClampInt(50, 0, 100))
	assert.Equal(t, 1, ClampInt(0, 1, 10))
	assert.Equal(t, 10, ClampInt(10, 1, 10))
}
