package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	list := Default()
	assert.Equal(t, StandardLength, list.Len())
	assert.Equal(t, "english", list.Name())
	assert.Equal(t, "abandon", list.Word(0))
	assert.Equal(t, "zoo", list.Word(StandardLength-1))
	assert.NoError(t, list.ValidateStandard())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr bool
	}{
		{"valid", []string{"alpha", "bravo", "charlie"}, false},
		{"empty list", nil, true},
		{"duplicate", []string{"alpha", "bravo", "alpha"}, true},
		{"blank word", []string{"alpha", " ", "charlie"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := New("test", tt.words)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.words), list.Len())
			}
		})
	}
}

func TestNewTrimsWhitespace(t *testing.T) {
	list, err := New("test", []string{" alpha ", "bravo\t"})
	require.NoError(t, err)
	assert.Equal(t, "alpha", list.Word(0))
	assert.Equal(t, "bravo", list.Word(1))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbravo\n\ncharlie\n"), 0o600))

	list, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "words.txt", list.Name())
	assert.Equal(t, []string{"alpha", "bravo", "charlie"},
		[]string{list.Word(0), list.Word(1), list.Word(2)})
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.txt")
	require.NoError(t, os.WriteFile(path, []byte("same\nsame\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateStandard(t *testing.T) {
	small, err := New("small", []string{"alpha", "bravo"})
	require.NoError(t, err)
	assert.Error(t, small.ValidateStandard())
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("y\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	files, err := Dir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)
}

func TestDirMissing(t *testing.T) {
	_, err := Dir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
