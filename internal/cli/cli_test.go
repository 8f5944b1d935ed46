package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParser_RegistersAllCommands(t *testing.T) {
	parser, _, cmds := buildParser("test")

	require.NotNil(t, cmds.Extract)
	require.NotNil(t, cmds.Paths)
	require.NotNil(t, cmds.Convert)

	names := []string{}
	for _, c := range parser.Commands() {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"extract", "paths", "convert"}, names)
}

func TestRunWithArgs_Version(t *testing.T) {
	out := captureOutput(t, func() {
		err := RunWithArgs("1.2.3", []string{"--version"})
		require.NoError(t, err)
	})
	assert.Contains(t, out, "browsekit 1.2.3")
}

func TestRunWithArgs_UnknownCommand(t *testing.T) {
	err := RunWithArgs("test", []string{"definitely-not-a-command"})
	require.Error(t, err)
}
