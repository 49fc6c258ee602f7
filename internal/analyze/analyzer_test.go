package analyze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathctl/internal/model"
)

// shadowTree builds the canonical shadow fixture: three directories where
// b re-introduces a's keepme.txt and c re-introduces both keepme.txt and
// b's x.
func shadowTree(t *testing.T) (root, dirA, dirB, dirC string) {
	t.Helper()
	root = t.TempDir()
	dirA = filepath.Join(root, "a")
	dirB = filepath.Join(root, "b")
	dirC = filepath.Join(root, "c")

	require.NoError(t, os.Mkdir(dirA, 0o755))
	require.NoError(t, os.Mkdir(dirB, 0o755))
	require.NoError(t, os.Mkdir(dirC, 0o755))

	for _, f := range []string{
		filepath.Join(dirA, "keepme.txt"),
		filepath.Join(dirB, "keepme.txt"),
		filepath.Join(dirB, "x"),
		filepath.Join(dirC, "keepme.txt"),
		filepath.Join(dirC, "x"),
	} {
		require.NoError(t, os.WriteFile(f, []byte("#!/bin/sh\n"), 0o755))
	}
	return
}

func join(dirs ...string) string {
	return strings.Join(dirs, ":")
}

func TestInvalid(t *testing.T) {
	root, dirA, _, dirC := shadowTree(t)
	missing := filepath.Join(root, "z")
	broken := filepath.Join(root, "brokenlink")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), broken))

	// Order and multiplicity of the raw string are preserved.
	got := New(join(missing, broken, dirA, dirC, missing)).Invalid()
	assert.Equal(t, []string{missing, broken, missing}, got)

	assert.Nil(t, New(join(dirA, dirC)).Invalid())
	assert.Nil(t, New("").Invalid())
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{name: "no duplicates", raw: []string{"a", "b", "c"}, want: nil},
		{name: "one repeat", raw: []string{"la", "broken", "a", "c", "la", "a"}, want: []string{"la", "a"}},
		{name: "first occurrence excluded", raw: []string{"a", "b", "a", "a"}, want: []string{"a", "a"}},
		{name: "empty", raw: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Analyzer{raw: tt.raw}
			assert.Equal(t, tt.want, a.Duplicates())
		})
	}
}

func TestShadowed(t *testing.T) {
	_, dirA, dirB, dirC := shadowTree(t)

	got, err := New(join(dirA, dirB, dirC)).Shadowed()
	require.NoError(t, err)
	assert.Equal(t, []model.DirShadows{
		{
			Dir:     dirB,
			Shadows: []model.Shadow{{Covered: dirA, Filename: "keepme.txt"}},
		},
		{
			Dir: dirC,
			Shadows: []model.Shadow{
				{Covered: dirA, Filename: "keepme.txt"},
				{Covered: dirB, Filename: "x"},
			},
		},
	}, got)
}

func TestShadowedSkipsInvalidDirs(t *testing.T) {
	root, dirA, dirB, _ := shadowTree(t)
	missing := filepath.Join(root, "z")

	got, err := New(join(missing, dirA, dirB)).Shadowed()
	require.NoError(t, err)
	assert.Equal(t, []model.DirShadows{
		{
			Dir:     dirB,
			Shadows: []model.Shadow{{Covered: dirA, Filename: "keepme.txt"}},
		},
	}, got)
}

func TestShadowedIgnoresRepeatedDirectory(t *testing.T) {
	// A directory listed twice does not shadow itself; the duplicate
	// report is the right place for that finding.
	_, dirA, _, _ := shadowTree(t)

	got, err := New(join(dirA, dirA)).Shadowed()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRun(t *testing.T) {
	root, dirA, dirB, _ := shadowTree(t)
	missing := filepath.Join(root, "z")

	report, err := New(join(missing, dirA, dirB, dirA)).Run(true)
	require.NoError(t, err)
	assert.Equal(t, []string{missing}, report.Invalid)
	assert.Equal(t, []string{dirA}, report.Duplicates)
	require.Len(t, report.Shadowed, 1)
	assert.Equal(t, dirB, report.Shadowed[0].Dir)

	// Without the shadow scan the section stays nil.
	report, err = New(join(missing, dirA)).Run(false)
	require.NoError(t, err)
	assert.Nil(t, report.Shadowed)
}

func TestEntries(t *testing.T) {
	root, dirA, dirB, _ := shadowTree(t)
	missing := filepath.Join(root, "z")

	entries := New(join(dirA, missing, dirB, dirA)).Entries()
	require.Len(t, entries, 4)

	assert.Equal(t, dirA, entries[0].Value)
	assert.False(t, entries[0].Missing)
	assert.False(t, entries[0].IsDuplicate)

	assert.True(t, entries[1].Missing)

	// dirB shadows dirA's keepme.txt.
	require.Len(t, entries[2].Shadows, 1)
	assert.Equal(t, "keepme.txt", entries[2].Shadows[0].Filename)

	assert.True(t, entries[3].IsDuplicate)
	assert.Equal(t, 0, entries[3].DuplicateOf)
	assert.Contains(t, entries[3].Remediation, "entry 1")
}

func TestFind(t *testing.T) {
	root, dirA, dirB, dirC := shadowTree(t)
	missing := filepath.Join(root, "z")

	analyzer := New(join(missing, dirA, dirB, dirC))
	assert.Equal(t, []string{dirB, dirC}, analyzer.Find("x"))
	assert.Equal(t, []string{dirA, dirB, dirC}, analyzer.Find("keepme.txt"))
	assert.Nil(t, analyzer.Find("nothing"))
}
