package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShots(t *testing.T) {
	shots := parseShots([]string{"duration3s: wide on the harbor", "close on the hands", "bogus:keeps prefix"}, "duration8s")
	require.Len(t, shots, 3)

	assert.Equal(t, "duration3s", shots[0].Duration)
	assert.Equal(t, "wide on the harbor", shots[0].Description)
	assert.Equal(t, "duration8s", shots[1].Duration)
	assert.Equal(t, "close on the hands", shots[1].Description)
	assert.Equal(t, "bogus:keeps prefix", shots[2].Description)
	assert.NotEqual(t, shots[0].ID, shots[1].ID)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a b", truncate("a\n  b", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
