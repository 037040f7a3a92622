package commands

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd reset")
	assert.True(t, ok)
	assert.Equal(t, []string{"reset"}, args)

	args, ok = Parse("cmd grid -visible=false")
	assert.True(t, ok)
	assert.Equal(t, []string{"grid", "-visible=false"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello there")
	assert.False(t, ok)

	_, ok = Parse("CMD reset")
	assert.False(t, ok, "prefix is case-sensitive")
}

func TestExecute(t *testing.T) {
	reg := NewRegistry()

	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	visible := fs.Bool("visible", true, "")
	var got bool
	reg.Register("grid", fs, func() error {
		got = *visible
		return nil
	})

	require.NoError(t, reg.Execute([]string{"grid", "-visible=false"}))
	assert.False(t, got)

	err := reg.Execute([]string{"nope"})
	assert.ErrorContains(t, err, "unknown command")

	err = reg.Execute(nil)
	assert.ErrorContains(t, err, "missing subcommand")

	err = reg.Execute([]string{"grid", "-bogus"})
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	reg := NewRegistry()
	reg.Register("reset", flag.NewFlagSet("reset", flag.ContinueOnError), func() error { return nil })
	reg.Register("grid", flag.NewFlagSet("grid", flag.ContinueOnError), func() error { return nil })

	assert.Equal(t, []string{"grid", "reset"}, reg.Names())
}
