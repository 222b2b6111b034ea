package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const fruitConfig = `name: fruit
description: Pick a fruit
search: true
options:
  - value: 1
    text: Apple
  - value: 2
    text: Banana
  - value: 3
    text: Cherry
    description: red
  - value: 4
    text: Date
    disabled: true
`

func executeCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	cmd.SetArgs(args)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dropdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
