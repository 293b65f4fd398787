package main

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

func TestIntList(t *testing.T) {
	var l intList
	require.NoError(t, l.Set("6, 8,14"))
	assert.Equal(t, intList{6, 8, 14}, l)
	assert.Equal(t, "6,8,14", l.String())

	assert.Error(t, l.Set("6,x"))
	assert.Error(t, l.Set("-1"))
	assert.Equal(t, intList{6, 8, 14}, l)
}

func TestIntListFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	l := intList{1, 2}
	fs.Var(&l, "l", "")

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, intList{1, 2}, l)

	require.NoError(t, fs.Parse([]string{"-l", "10,20,30"}))
	assert.Equal(t, intList{10, 20, 30}, l)
}

func TestCommandMap(t *testing.T) {
	m := commandMap()
	for _, name := range []string{"greedy", "beam", "gibbs", "sweep"} {
		assert.NotNil(t, m[name], name)
	}
	assert.Nil(t, m["duplex"])
}
