package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("LOC8R_STR", "value")
	t.Setenv("LOC8R_INT", "42")
	t.Setenv("LOC8R_BAD_INT", "forty")
	t.Setenv("LOC8R_FLOAT", "126.964062")
	t.Setenv("LOC8R_BOOL", "true")
	t.Setenv("LOC8R_DUR", "15s")

	assert.Equal(t, "value", GetString("LOC8R_STR", "def"))
	assert.Equal(t, "def", GetString("LOC8R_MISSING", "def"))
	assert.Equal(t, 42, GetInt("LOC8R_INT", 1))
	assert.Equal(t, 1, GetInt("LOC8R_BAD_INT", 1))
	assert.InDelta(t, 126.964062, GetFloat("LOC8R_FLOAT", 0), 1e-9)
	assert.True(t, GetBool("LOC8R_BOOL", false))
	assert.Equal(t, 15*time.Second, GetDuration("LOC8R_DUR", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("LOC8R_MISSING", time.Minute))
}
