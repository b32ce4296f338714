package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/poap-raffle/raffle-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_SkipsApp(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "raffle version "+config.Version+" (commit "+config.Commit+", built "+config.Date+")\n", out.String())
}

func TestRootCmd_Tree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"deploy"},
		{"raffle", "create"},
		{"raffle", "pick"},
		{"raffle", "show"},
		{"raffle", "winners"},
		{"raffle", "image"},
		{"raffle", "info"},
		{"raffle", "list"},
		{"chain", "balance"},
		{"chain", "time"},
		{"networks"},
		{"history"},
		{"config", "set"},
		{"config", "remove"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	for _, name := range []string{"network", "address", "output", "timeout", "no-journal", "non-interactive", "debug"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestGetApp_NotInitialized(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := getApp(cmd)
	assert.EqualError(t, err, "app not initialized")
}

func TestSession_ClosesInReverseOrder(t *testing.T) {
	var order []int
	s := &session{}
	s.add(func() { order = append(order, 1) })
	s.add(nil)
	s.add(func() { order = append(order, 2) })

	s.close()
	s.close()
	assert.Equal(t, []int{2, 1}, order)
}

func TestValidKind(t *testing.T) {
	assert.True(t, validKind("pickAndMint"))
	assert.True(t, validKind("deploy"))
	assert.False(t, validKind("transfer"))
}
