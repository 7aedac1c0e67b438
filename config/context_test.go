package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("medium", ValidPriorities))
	assert.False(t, IsValid("sometime", ValidPriorities))

	assert.True(t, IsValid("in_progress", ValidStatuses))
	assert.False(t, IsValid("paused", ValidStatuses))

	assert.True(t, IsValid("whatsapp", ValidContextTypes))
	assert.False(t, IsValid("fax", ValidContextTypes))

	assert.False(t, IsValid("", ValidPriorities))
}
