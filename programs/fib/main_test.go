package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"j5.nz/nostd/std/config"
	"j5.nz/nostd/std/program"
	"j5.nz/nostd/std/sys"
	"j5.nz/nostd/std/sys/systest"
)

func TestEmbeddedConfig(t *testing.T) {
	c, err := config.Parse(cfg)
	require.NoError(t, err)
	assert.Equal(t, 25, c.TermLimit)
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, config.Hex, c.Radix)
}

func TestRun(t *testing.T) {
	rec := &systest.Recorder{}
	status := program.Run(rec, cfg, (*program.Runner).Fib)
	assert.Equal(t, program.StatusOK, status)
	assert.Equal(t, 25, strings.Count(rec.Output(sys.Stdout), "\n"))
}
