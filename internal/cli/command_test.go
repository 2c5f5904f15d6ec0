package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(exec func(ctx context.Context, o *IO, args []string) error) *Command {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Int("n", 1, "iteration count")

	return &Command{
		Flags: flags,
		Usage: "bench [flags]",
		Short: "run benchmarks",
		Exec:  exec,
	}
}

func Test_Command_Run_Executes_With_Parsed_Flags(t *testing.T) {
	t.Parallel()

	var gotArgs []string

	cmd := newTestCommand(func(_ context.Context, _ *IO, args []string) error {
		gotArgs = args
		return nil
	})

	var out, errOut strings.Builder
	code := cmd.Run(context.Background(), NewIO(&out, &errOut), []string{"--n", "5", "extra"})

	require.Equal(t, 0, code)
	assert.Equal(t, []string{"extra"}, gotArgs, "positional args should pass through")

	n, err := cmd.Flags.GetInt("n")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func Test_Command_Run_Prints_Help_When_Help_Flag_Given(t *testing.T) {
	t.Parallel()

	cmd := newTestCommand(func(_ context.Context, _ *IO, _ []string) error {
		t.Fatal("Exec should not run for --help")
		return nil
	})

	var out, errOut strings.Builder
	code := cmd.Run(context.Background(), NewIO(&out, &errOut), []string{"--help"})

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Usage: bench [flags]")
	assert.Contains(t, out.String(), "iteration count")
}

func Test_Command_Run_Returns_One_When_Flags_Invalid(t *testing.T) {
	t.Parallel()

	cmd := newTestCommand(func(_ context.Context, _ *IO, _ []string) error {
		t.Fatal("Exec should not run for invalid flags")
		return nil
	})

	var out, errOut strings.Builder
	code := cmd.Run(context.Background(), NewIO(&out, &errOut), []string{"--bogus"})

	require.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "error:")
}

func Test_Command_Run_Returns_One_When_Exec_Fails(t *testing.T) {
	t.Parallel()

	cmd := newTestCommand(func(_ context.Context, _ *IO, _ []string) error {
		return errors.New("bench failed")
	})

	var out, errOut strings.Builder
	code := cmd.Run(context.Background(), NewIO(&out, &errOut), nil)

	require.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "bench failed")
}

func Test_Command_Name_Is_First_Word_Of_Usage(t *testing.T) {
	t.Parallel()

	cmd := newTestCommand(nil)

	assert.Equal(t, "bench", cmd.Name())
}
