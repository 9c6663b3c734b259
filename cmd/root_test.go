package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/config"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/presentation"
)

// resetFlags restores every flag to its default between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the CLI against configPath with the given stdin.
func execute(t *testing.T, configPath, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XROOT_DEBUG", "")

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--config", configPath))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeConfig writes a config file with history stored in the temp dir.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "cache:\n  enabled: true\n  ttl: 1m\n" +
		"history:\n  enabled: false\n  path: " + filepath.Join(dir, "history.db") + "\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitConfig_WritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	res := execute(t, path, "", "ops", "--category", "format")
	require.NoError(t, res.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
	require.Equal(t, config.Defaults().Transforms, cfg.Transforms)
}

func TestInitConfig_ReadsOverrides(t *testing.T) {
	path := writeConfig(t, "transforms:\n  caesar_shift: 1\n")

	res := execute(t, path, "", "run", "caesar cipher", "abc")
	require.NoError(t, res.err)
	require.Equal(t, "bcd\n", res.stdout)
}

func TestOps_Table(t *testing.T) {
	res := execute(t, writeConfig(t, ""), "", "ops")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 21)
	require.True(t, strings.HasPrefix(lines[0], "OPERATION"))
	require.Contains(t, lines[1], "To Base64")
	require.Contains(t, lines[20], "JSON Minify")
}

func TestOps_CategoryAndSearchJSON(t *testing.T) {
	path := writeConfig(t, "")

	res := execute(t, path, "", "ops", "--category", "hash", "--json")
	require.NoError(t, res.err)
	var ops []presentation.OperationDTO
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &ops))
	require.Len(t, ops, 3)
	require.Equal(t, "MD5", ops[0].ID)

	res = execute(t, path, "", "ops", "--search", "BASE64", "--json")
	require.NoError(t, res.err)
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &ops))
	require.Len(t, ops, 2)
}

func TestOps_UnknownCategory(t *testing.T) {
	res := execute(t, writeConfig(t, ""), "", "ops", "--category", "bogus")
	require.Error(t, res.err)
}

func TestOps_RawMarkdown(t *testing.T) {
	res := execute(t, writeConfig(t, ""), "", "ops", "--markdown", "--raw", "--category", "crypto")
	require.NoError(t, res.err)
	require.True(t, strings.HasPrefix(res.stdout, "# Operations"))
	require.Contains(t, res.stdout, "XOR Cipher")
	require.NotContains(t, res.stdout, "To Base64")
}

func TestOps_RenderedMarkdown(t *testing.T) {
	res := execute(t, writeConfig(t, ""), "", "ops", "--markdown")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Caesar Cipher")
}

func TestRun(t *testing.T) {
	path := writeConfig(t, "")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args are joined", "", []string{"run", "To Upper", "hello", "world"}, "HELLO WORLD\n"},
		{"stdin drops one newline", "Hello\n", []string{"run", "ROT13"}, "Uryyb\n"},
		{"name is case-insensitive", "", []string{"run", "to base64", "Hello"}, "SGVsbG8=\n"},
		{"crc32", "", []string{"run", "CRC32", "123456789"}, "CBF43926\n"},
		{"json pretty", `{"a":[1,2]}`, []string{"run", "JSON Pretty"}, "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, path, tt.stdin, tt.args...)
			require.NoError(t, res.err)
			require.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestRun_FromFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("abc"), 0o600))

	res := execute(t, writeConfig(t, ""), "", "run", "Reverse", "--file", in)
	require.NoError(t, res.err)
	require.Equal(t, "cba\n", res.stdout)
}

func TestRun_Out(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.txt")

	res := execute(t, writeConfig(t, ""), "", "run", "To Hex", "AB", "--out", out)
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "wrote 5 bytes")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "41 42", string(data))
}

func TestRun_Diff(t *testing.T) {
	res := execute(t, writeConfig(t, ""), "", "run", "Remove Spaces", "a b", "--diff")
	require.NoError(t, res.err)
	require.Equal(t, "a[- -]b\n", res.stdout)
}

func TestRun_Failures(t *testing.T) {
	path := writeConfig(t, "")

	res := execute(t, path, "", "run", "From Base64", "@@@")
	require.EqualError(t, res.err, "invalid_encoding: Invalid Base64 string")

	res = execute(t, path, "", "run", "Nope", "x")
	require.Error(t, res.err)
	require.True(t, strings.HasPrefix(res.err.Error(), "unknown_operation: "))

	res = execute(t, path, "", "run", "ROT13", "--watch")
	require.EqualError(t, res.err, "--watch requires --file")
}

func TestHistory(t *testing.T) {
	disabled := writeConfig(t, "")
	res := execute(t, disabled, "", "history")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "History is disabled")

	path := writeConfig(t, "")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(content, []byte("enabled: false"), []byte("enabled: true"), 1), 0o600))

	require.NoError(t, execute(t, path, "", "run", "To Lower", "ABC").err)
	require.Error(t, execute(t, path, "", "run", "JSON Minify", "{").err)

	res = execute(t, path, "", "history")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "To Lower")
	require.Contains(t, res.stdout, "invalid_input")

	res = execute(t, path, "", "history", "--stats", "--json")
	require.NoError(t, res.err)
	var stats []presentation.StatsDTO
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &stats))
	require.Len(t, stats, 2)

	res = execute(t, path, "", "history", "--clear")
	require.NoError(t, res.err)
	require.Equal(t, "Cleared 2 entries.\n", res.stdout)

	res = execute(t, path, "", "history")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "No executions recorded.")
}

func TestResolveOperation(t *testing.T) {
	cat := newTestCatalog(t)
	require.Equal(t, "JSON Pretty", resolveOperation(cat, "json pretty"))
	require.Equal(t, "JSON Pretty", resolveOperation(cat, "JSON Pretty"))
	require.Equal(t, "whatever", resolveOperation(cat, "whatever"))
}

func TestRenderDiff(t *testing.T) {
	require.Equal(t, "same", renderDiff("same", "same"))
	require.Equal(t, "[-ab-]{+AB+}", renderDiff("ab", "AB"))
}

func newTestCatalog(t *testing.T) *operation.Catalog {
	t.Helper()
	return operation.Default()
}
