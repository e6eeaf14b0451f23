package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/guardorder/prover"
)

const natSpec = `
sorts: [Nat]
functions:
  - {name: zero, codomain: Nat}
  - {name: succ, domain: [Nat], codomain: Nat}
  - {name: plus, domain: [Nat, Nat], codomain: Nat}
variables:
  - {name: n, sort: Nat}
  - {name: m, sort: Nat}
  - {name: b, sort: Bool}
equations:
  - {lhs: "plus(n, zero)", rhs: "n"}
  - {lhs: "plus(n, succ(m))", rhs: "succ(plus(n, m))"}
`

// resetFlags restores every flag of the command tree to its default, since
// the commands are package-level and survive between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(natSpec), 0o644))
	return path
}

func TestInitWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	out, err := run(t, "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	config, err := prover.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, prover.DefaultConfig(), config)
}

func TestNormalizeCommand(t *testing.T) {
	spec := writeSpec(t)
	for _, strategy := range []string{"jitty", "innermost_compiling_with_prover"} {
		t.Run(strategy, func(t *testing.T) {
			out, err := run(t, "normalize", "--config", "", "--spec", spec, "--strategy", strategy,
				"plus(succ(zero), succ(zero))", "plus(n, zero)")
			require.NoError(t, err)
			assert.Equal(t, "succ(succ(zero))\nn\n", out)
		})
	}
}

func TestNormalizeWithSubstitutionAndFile(t *testing.T) {
	spec := writeSpec(t)
	terms := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(terms, []byte("# doubled\nplus(n, n)\n\nplus(m, n)\n"), 0o644))

	out, err := run(t, "normalize", "--config", "", "--spec", spec, "--subst", "n=succ(zero)", "--file", terms)
	require.NoError(t, err)
	assert.Equal(t, "succ(succ(zero))\nsucc(m)\n", out)
}

func TestNormalizeErrors(t *testing.T) {
	spec := writeSpec(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no spec", []string{"normalize", "--config", "", "zero"}},
		{"no terms", []string{"normalize", "--config", "", "--spec", spec}},
		{"bad term", []string{"normalize", "--config", "", "--spec", spec, "plus(zero)"}},
		{"bad substitution", []string{"normalize", "--config", "", "--spec", spec, "--subst", "n=true", "n"}},
		{"bad strategy", []string{"normalize", "--config", "", "--spec", spec, "--strategy", "outermost", "n"}},
		{"missing config", []string{"normalize", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--spec", spec, "n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeBatchTimeout(t *testing.T) {
	spec := writeSpec(t)
	_, err := run(t, "normalize", "--config", "", "--spec", spec, "--timeout", "1ns", "zero", "succ(zero)")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompareAndLPOCommands(t *testing.T) {
	spec := writeSpec(t)

	out, err := run(t, "compare", "--config", "", "--spec", spec, "n", "succ(n)")
	require.NoError(t, err)
	assert.Equal(t, "smaller\n", out)

	out, err = run(t, "compare", "--config", "", "--spec", spec, "--guard", "succ(n) == m", "n == m")
	require.NoError(t, err)
	assert.Equal(t, "bigger\n", out)

	out, err = run(t, "lpo", "--config", "", "--spec", spec, "succ(n)", "n")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestOrderCommand(t *testing.T) {
	spec := writeSpec(t)

	out, err := run(t, "order", "--config", "", "--spec", spec, "succ(n) == m", "b", "n == m")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], " b"))
	assert.True(t, strings.HasSuffix(lines[1], " (n == m)"))
	assert.True(t, strings.HasSuffix(lines[2], " (succ(n) == m)"))

	out, err = run(t, "order", "--config", "", "--spec", spec, "--json", "succ(n) == m", "b")
	require.NoError(t, err)
	var got []orderedGuard
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []orderedGuard{
		{Guard: "b", Class: "variable"},
		{Guard: "(succ(n) == m)", Class: "equality"},
	}, got)
}
