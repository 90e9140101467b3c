package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("HOST_PROC", "")
	cfg := NewConfig()
	assert.Equal(t, DefaultProcRoot, cfg.ProcRoot)
	assert.Equal(t, DefaultLineLimit, cfg.LineLimit)
	assert.True(t, cfg.ExcludeSelf)

	t.Setenv("HOST_PROC", "/host/proc")
	assert.Equal(t, "/host/proc", NewConfig().ProcRoot)
}
