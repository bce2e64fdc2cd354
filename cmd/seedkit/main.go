package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedkit/seedkit/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "seedkit",
		Short: "BIP-39 mnemonic generation and BIP-32 master key derivation",
		Long: `Seedkit implements the seed-phrase wallet pipeline from first
principles: SHA-256/SHA-512, HMAC-SHA512, PBKDF2-HMAC-SHA512 and
Base58Check, composed into BIP-39 mnemonic generation and BIP-32
master key derivation with xprv and WIF output.

Features:
- Mnemonic phrases from 128-256 bits of entropy (12-24 words)
- Custom newline-delimited wordlists
- BIP-39 seed derivation with passphrase
- Master key derivation with xprv and WIF serialization`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewMnemonicCommand(),
		cli.NewMasterCommand(),
		cli.NewSeedCommand(),
		cli.NewWordlistsCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
