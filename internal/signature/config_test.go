package signature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.False(t, c.FreshnessEnabled)
	assert.Equal(t, DefaultToleranceSeconds, c.ToleranceSeconds)
	assert.Equal(t, 10*time.Second, c.Tolerance())
}

func TestConfig_SetDefaults(t *testing.T) {
	c := &Config{FreshnessEnabled: true, ToleranceSeconds: 30}
	c.SetDefaults()
	assert.Equal(t, 30*time.Second, c.Tolerance())

	c = &Config{ToleranceSeconds: -5}
	c.SetDefaults()
	assert.Equal(t, DefaultToleranceSeconds, c.ToleranceSeconds)
}
