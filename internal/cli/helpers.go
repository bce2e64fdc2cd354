package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/seedkit/seedkit/pkg/config"
	"github.com/seedkit/seedkit/pkg/wordlist"
)

// loadConfig reads the user configuration, falling back to defaults
// when no file exists or the location cannot be resolved.
func loadConfig() *config.Config {
	path, err := config.Path()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// loadWordlist resolves the wordlist to use: an explicit path, the
// configured path, or the embedded English list. When strict mode is
// on, lists that are not exactly 2048 words are rejected; otherwise
// word selection tolerates any size via modulo indexing.
func loadWordlist(path string, cfg *config.Config) (*wordlist.List, error) {
	if path == "" {
		path = cfg.Defaults.WordlistPath
	}

	var list *wordlist.List
	var err error
	if path == "" {
		list = wordlist.Default()
	} else {
		list, err = wordlist.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Defaults.StrictWordlist {
		if err := list.ValidateStandard(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// readPassphrase reads a passphrase from the terminal without echo.
func readPassphrase(prompt string) (string, error) {
	fmt.Print(prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		passBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(passBytes), nil
	}

	// Fallback for non-terminal
	return readLine()
}

// readLine reads a single trimmed line from stdin.
func readLine() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
