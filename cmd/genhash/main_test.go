package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdgoc.backend/pkg/crypto"
)

func withIO(t *testing.T, in string) *bytes.Buffer {
	t.Helper()
	origIn, origOut, origHash := stdin, stdout, generateHashFn
	t.Cleanup(func() {
		stdin, stdout, generateHashFn = origIn, origOut, origHash
	})
	out := &bytes.Buffer{}
	stdin = strings.NewReader(in)
	stdout = out
	return out
}

func TestResolvePassword(t *testing.T) {
	pw, err := resolvePassword([]string{"from-arg"}, strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-arg", pw)

	pw, err = resolvePassword(nil, strings.NewReader("piped-secret\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "piped-secret", pw)

	pw, err = resolvePassword(nil, strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	_, err = resolvePassword(nil, strings.NewReader(""))
	assert.Error(t, err)
}

func TestRun_PrintsVerifiableHash(t *testing.T) {
	out := withIO(t, "")

	require.NoError(t, run([]string{"password123"}))
	hash := strings.TrimSpace(out.String())
	assert.True(t, crypto.CheckPassword("password123", hash))
}

func TestRun_HashError(t *testing.T) {
	withIO(t, "")
	generateHashFn = func(string) (string, error) { return "", errors.New("boom") }

	err := run([]string{"password123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}
