package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "calcctl", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "calcctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())

	assert.Equal(t, "calcctl version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}

	for _, expected := range []string{"version", "run", "providers"} {
		assert.True(t, found[expected], "subcommand %s not registered", expected)
	}
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	root.Version = "9.9.9"
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "calcctl version 9.9.9\n", buf.String())
}

func TestRunCmdFlags(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("extra"))
	assert.NotNil(t, cmd.Flags().Lookup("primary"))
}

// executeRoot runs the root command against an isolated config directory.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("logging:\n  level: info\n"), 0644))

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", dir}, args...))
	t.Cleanup(func() {
		configPath = ""
		debug = false
	})

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_BuiltInsOnly(t *testing.T) {
	_, logs, err := executeRoot(t, "run", "--extra", "")
	require.NoError(t, err)
	assert.Contains(t, logs, "NotSoSimpleCoreCalculatorService#calculate")
	assert.NotContains(t, logs, "userDefined")
}

func TestRun_UserDefined(t *testing.T) {
	_, logs, err := executeRoot(t, "run", "--extra", "userDefined")
	require.NoError(t, err)
	assert.Contains(t, logs, ">> userDefined#calculate")
}

func TestRun_AmbiguousFails(t *testing.T) {
	_, _, err := executeRoot(t, "run", "--extra", "a,b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default calculator")
}

func TestProviders_ListsDefault(t *testing.T) {
	out, _, err := executeRoot(t, "providers", "--extra", "userDefined")
	require.NoError(t, err)

	assert.Contains(t, out, "simpleCoreCalculatorService")
	assert.Contains(t, out, "notSoSimpleCoreCalculatorService")
	assert.Contains(t, out, "* ")
	assert.Contains(t, out, "selection: selected, default userDefined")
}

func TestProviders_Skipped(t *testing.T) {
	out, _, err := executeRoot(t, "providers", "--extra", "a,b")
	require.NoError(t, err)
	assert.Contains(t, out, "no default for 4 calculators")
}
