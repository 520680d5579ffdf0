package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := run(t, missingConfig(t), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "searchbox "+version)
	assert.Contains(t, out, "Commit: "+commit)
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}
