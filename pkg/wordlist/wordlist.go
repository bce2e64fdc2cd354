// Package wordlist supplies ordered word lists for mnemonic encoding.
// A list is read-only once constructed; the core only relies on a
// stable index order. Lists of arbitrary size are accepted here —
// strictness about the standard 2048 entries is a separate, explicit
// check so callers can choose between standard conformance and the
// tolerant behavior.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// StandardLength is the BIP-39 word count.
const StandardLength = 2048

// List is an ordered sequence of unique words.
type List struct {
	words []string
	name  string
}

// New builds a list from words, rejecting empty and duplicate entries.
func New(name string, words []string) (*List, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist %q: no words", name)
	}
	seen := make(map[string]struct{}, len(words))
	owned := make([]string, len(words))
	for i, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			return nil, fmt.Errorf("wordlist %q: empty word at index %d", name, i)
		}
		if _, dup := seen[w]; dup {
			return nil, fmt.Errorf("wordlist %q: duplicate word %q", name, w)
		}
		seen[w] = struct{}{}
		owned[i] = w
	}
	return &List{words: owned, name: name}, nil
}

// Load reads a newline-delimited wordlist file. Blank lines are
// skipped; word order follows file order.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}

	return New(filepath.Base(path), words)
}

// Default returns the embedded English BIP-39 wordlist.
func Default() *List {
	words := make([]string, len(wordlists.English))
	copy(words, wordlists.English)
	return &List{words: words, name: "english"}
}

// Dir lists the regular files in a directory that can be offered as
// wordlist choices, sorted by name.
func Dir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Name returns the list's display name.
func (l *List) Name() string { return l.name }

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Word returns the word at index i.
func (l *List) Word(i int) string { return l.words[i] }

// ValidateStandard reports an error unless the list has exactly the
// standard 2048 entries.
func (l *List) ValidateStandard() error {
	if len(l.words) != StandardLength {
		return fmt.Errorf("wordlist %q has %d words, expected %d", l.name, len(l.words), StandardLength)
	}
	return nil
}
