package main

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	l := newLogger(&b, "warn")
	level.Info(l).Log("msg", "dropped")
	require.Empty(t, b.String())

	level.Warn(l).Log("msg", "kept")
	require.Contains(t, b.String(), "level=warn")
	require.Contains(t, b.String(), "msg=kept")
}
