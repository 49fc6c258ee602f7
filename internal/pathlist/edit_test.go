package pathlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want List
	}{
		{name: "no duplicates", args: []string{"a", "b", "c"}, want: List{"a", "b", "c"}},
		{name: "last mention wins", args: []string{"x", "y", "x"}, want: List{"y", "x"}},
		{name: "compound argument", args: []string{"x:y:x"}, want: List{"y", "x"}},
		{name: "mixed arguments", args: []string{"a:b", "b:c"}, want: List{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.args))
		})
	}
}

func TestAdd(t *testing.T) {
	current := Parse("b:a:c")

	// Arguments occupy the front in merged order; current-path survivors
	// follow in their original order without duplicating "a".
	assert.Equal(t, List{"d", "a", "b", "c"}, Add(current, []string{"d", "a"}))

	// Current path untouched by the merge.
	assert.Equal(t, List{"b", "a", "c"}, current)

	assert.Equal(t, List{"d", "b", "a", "c"}, Add(current, []string{"d"}))
	assert.Equal(t, List{"b", "a", "c"}, Add(current, nil))
}

func TestAppend(t *testing.T) {
	current := Parse("b:a:c")

	// Argument directories land at the back; a duplicated current entry
	// is displaced to the very end.
	assert.Equal(t, List{"a", "c", "d", "b"}, Append(current, []string{"d", "b"}))

	assert.Equal(t, List{"b", "a", "c", "d"}, Append(current, []string{"d"}))
	assert.Equal(t, List{"b", "a", "c"}, Append(current, nil))
}

func TestFilter(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "a")
	dirB := filepath.Join(root, "b")
	file := filepath.Join(root, "file.txt")
	missing := filepath.Join(root, "nope")
	require.NoError(t, os.Mkdir(dirA, 0o755))
	require.NoError(t, os.Mkdir(dirB, 0o755))
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	got := Filter(List{missing, dirA, file, dirB})
	assert.Equal(t, List{dirA, dirB}, got)

	// No-op on an already-valid list.
	assert.Equal(t, List{dirA, dirB}, Filter(List{dirA, dirB}))

	assert.Nil(t, Filter(List{missing, file}))
}

func TestNormalize(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "a")
	link := filepath.Join(root, "la")
	missing := filepath.Join(root, "nope")
	require.NoError(t, os.Mkdir(dirA, 0o755))
	require.NoError(t, os.Symlink(dirA, link))

	canonicalA, ok, err := Canonicalize(dirA)
	require.NoError(t, err)
	require.True(t, ok)

	// A symlink and its target collapse into one canonical entry; the
	// earlier position wins. Invalid entries drop out.
	got := Normalize(List{link, dirA, missing})
	assert.Equal(t, List{canonicalA}, got)
}

func TestApplyFilters(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "a")
	link := filepath.Join(root, "la")
	missing := filepath.Join(root, "nope")
	require.NoError(t, os.Mkdir(dirA, 0o755))
	require.NoError(t, os.Symlink(dirA, link))

	list := List{dirA, link, missing}

	// Neither flag: identity.
	assert.Equal(t, list, ApplyFilters(list, false, false))

	// Filter keeps both the directory and the symlink to it.
	assert.Equal(t, List{dirA, link}, ApplyFilters(list, true, false))

	// Normalize collapses them.
	canonicalA, _, err := Canonicalize(dirA)
	require.NoError(t, err)
	assert.Equal(t, List{canonicalA}, ApplyFilters(list, false, true))

	// Filter wins when both are requested.
	assert.Equal(t, List{dirA, link}, ApplyFilters(list, true, true))
}
