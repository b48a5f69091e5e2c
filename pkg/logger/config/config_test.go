package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationValidate(t *testing.T) {
	assert.NoError(t, Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}.Validate())
	assert.NoError(t, Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}.Validate())
	assert.Error(t, Configuration{Level: FATAL_LEVEL + 1, TimeFormat: time.RFC3339}.Validate())
	assert.Error(t, Configuration{Level: DEBUG_LEVEL - 1, TimeFormat: time.RFC3339}.Validate())
	assert.ErrorIs(t, Configuration{Level: INFO_LEVEL}.Validate(), ErrEmptyTimeFormat)
}
