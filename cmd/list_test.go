package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernaltrap8/proctl/pkg"
)

var listed = []*pkg.Process{
	{Pid: 100, Cmdline: "sleep\x00300\x00"},
}

func TestWriteProcessesText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeProcesses(&buf, listed, "text"))
	assert.Equal(t, "100\tsleep 300\n", buf.String())
}

func TestWriteProcessesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeProcesses(&buf, listed, "json"))
	assert.JSONEq(t, `[{"pid":100,"cmdline":"sleep 300","args":["sleep","300"]}]`, buf.String())
}

func TestWriteProcessesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeProcesses(&buf, listed, "yaml"))
	assert.YAMLEq(t, "- pid: 100\n  cmdline: sleep 300\n  args: [sleep, \"300\"]\n", buf.String())
}

func TestWriteProcessesUnknownFormat(t *testing.T) {
	assert.Error(t, writeProcesses(&bytes.Buffer{}, listed, "xml"))
}
