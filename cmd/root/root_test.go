package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "opus", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.Run)
	assert.NotNil(t, Cmd.PersistentPreRun)
}

func TestInit_RegistersPersistentFlags(t *testing.T) {
	Init()

	flags := Cmd.PersistentFlags()
	for _, name := range []string{"input", "output", "demo", "account", "search", "tag"} {
		assert.NotNil(t, flags.Lookup(name), "flag %s", name)
	}

	tag := flags.Lookup("tag")
	require.NotNil(t, tag)
	assert.Equal(t, "all", tag.DefValue)
}

func TestGetLogrusAdapter(t *testing.T) {
	assert.NotNil(t, GetLogrusAdapter())
}
