package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesStateDirAndDatabase(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf))

	assert.Contains(t, buf.String(), "sts/ created")
	assert.Contains(t, buf.String(), "sts/history.db created")

	info, err := os.Stat(stateDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(historyPath)
	require.NoError(t, err)
}

func TestInit_Idempotent(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf))

	assert.Contains(t, buf.String(), "sts/ already exists")
	assert.Contains(t, buf.String(), "sts/history.db already exists")
}
