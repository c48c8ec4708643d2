package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/quotesort/internal/testutils"
	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_SortsByDefault(t *testing.T) {
	dir, path := testutils.SetupProject(t, `{"quotes": [["b quote","B"],["a quote","A"],["c quote","A"]]}`)

	out, err := execute(t, "--dir", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	a := strings.Index(string(data), "a quote")
	c := strings.Index(string(data), "c quote")
	b := strings.Index(string(data), "b quote")
	assert.True(t, a < c && c < b, "unexpected order:\n%s", data)

	out, err = execute(t, "check", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "is sorted")
}

func TestRoot_StructuralFailure(t *testing.T) {
	dir, path := testutils.SetupProject(t, `{"foo": []}`)

	_, err := execute(t, "sort", "--dir", dir)
	assert.ErrorIs(t, err, domain.ErrStructure)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"foo": []}`, string(data))
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir(), "extra")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "quotesort version "))
}

func TestRoot_DirFlagHidden(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("dir")
	require.NotNil(t, flag)
	assert.True(t, flag.Hidden)
	assert.Equal(t, ".", flag.DefValue)

	assert.NotContains(t, rootCmd.UsageString(), "--dir")
}
