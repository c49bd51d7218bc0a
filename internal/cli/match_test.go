package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args, capturing stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	a := writeFile(t, "a.txt", "mercury\nvenus\nearth\n")
	b := writeFile(t, "b.txt", "earht\nmecrury\nvense\n")

	out, err := runCommand(t, "match", a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "mercury\tmecrury\t0.500")
	assert.Contains(t, out, "venus\tvense\t0.500")
	assert.Contains(t, out, "earth\tearht\t0.500")
	assert.Contains(t, out, "total\t1.500")
}

func TestMatchCommand_WithConfig(t *testing.T) {
	a := writeFile(t, "a.txt", "beta\n")
	b := writeFile(t, "b.txt", "betas\n")
	cfg := writeFile(t, "scoring.toml", "min_score = 0.9\n")

	out, err := runCommand(t, "match", a, b, "--config", cfg)
	require.NoError(t, err)

	// 6/7 ≈ 0.857 sits below the 0.9 floor: the forced pair reports 0.
	assert.Contains(t, out, "beta\tbetas\t0.000")
}

func TestMatchCommand_MissingFile(t *testing.T) {
	b := writeFile(t, "b.txt", "x\n")

	_, err := runCommand(t, "match", "does-not-exist.txt", b)
	require.Error(t, err)
}

func TestMatchCommand_WrongArgCount(t *testing.T) {
	_, err := runCommand(t, "match", "only-one.txt")
	require.Error(t, err)
}
