package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassesCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "literals and keys",
			args: []string{"ui", "key:active", "key:disabled=false", "dropdown"},
			want: "ui active dropdown",
		},
		{
			name: "value key",
			args: []string{"ui", "value-key:attached=top", "menu"},
			want: "ui top attached menu",
		},
		{
			name: "width",
			args: []string{"width:4=wide column"},
			want: "four wide column",
		},
		{
			name: "text align",
			args: []string{"ui", "text-align:center", "segment"},
			want: "ui center aligned segment",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := executeCommand(newRootCmd(), append([]string{"classes"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestClassesCommandList(t *testing.T) {
	t.Parallel()

	out, _, err := executeCommand(newRootCmd(), "classes", "--list", "ui", "value-key:attached=top")
	require.NoError(t, err)
	assert.Equal(t, "ui\ntop attached\n", out)
}

func TestClassesCommandRejectsUnknownDirective(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(newRootCmd(), "classes", "bogus:thing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown directive")
}

func TestClassesCommandRequiresArgs(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(newRootCmd(), "classes")
	require.Error(t, err)
}
