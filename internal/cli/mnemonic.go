package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seedkit/seedkit/internal/validation"
	"github.com/seedkit/seedkit/pkg/crypto/mnemonic"
	"github.com/seedkit/seedkit/pkg/entropy"
)

func NewMnemonicCommand() *cobra.Command {
	var (
		bits         int
		wordlistPath string
		showEntropy  bool
		outputJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a new mnemonic phrase from fresh entropy",
		Long: `Generate a mnemonic phrase from cryptographically secure entropy.

The entropy size determines the phrase length:
  128 bits -> 12 words    192 bits -> 18 words    256 bits -> 24 words
  160 bits -> 15 words    224 bits -> 21 words

A custom wordlist can be supplied as a newline-delimited file; without
one the embedded English BIP-39 list is used.`,
		Example: `  # Generate a 24-word mnemonic
  seedkit mnemonic --bits 256

  # Use a custom wordlist and show the raw entropy
  seedkit mnemonic --wordlist ./wordlists/english.txt --show-entropy

  # Output as JSON
  seedkit mnemonic --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if !cmd.Flags().Changed("bits") {
				bits = cfg.Defaults.EntropyBits
			}

			if err := validation.ValidateEntropyBits(bits); err != nil {
				return err
			}

			list, err := loadWordlist(wordlistPath, cfg)
			if err != nil {
				return fmt.Errorf("failed to load wordlist: %w", err)
			}

			ent, err := entropy.Bytes(bits / 8)
			if err != nil {
				// Never retried and never substituted: a degraded RNG
				// must surface, not be masked.
				return fmt.Errorf("failed to generate entropy: %w", err)
			}

			phrase, err := mnemonic.FromEntropy(ent, list)
			if err != nil {
				return fmt.Errorf("failed to build mnemonic: %w", err)
			}

			if outputJSON {
				result := map[string]interface{}{
					"mnemonic":   phrase.String(),
					"word_count": phrase.WordCount(),
					"wordlist":   list.Name(),
				}
				if showEntropy {
					result["entropy"] = hex.EncodeToString(ent)
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			return outputMnemonicText(cmd, phrase, ent, showEntropy)
		},
	}

	cmd.Flags().IntVarP(&bits, "bits", "b", 256, "Entropy size in bits (128, 160, 192, 224, or 256)")
	cmd.Flags().StringVarP(&wordlistPath, "wordlist", "w", "", "Path to a newline-delimited wordlist file")
	cmd.Flags().BoolVar(&showEntropy, "show-entropy", false, "Show the raw entropy in hex")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")

	return cmd
}

func outputMnemonicText(cmd *cobra.Command, phrase *mnemonic.Phrase, ent []byte, showEntropy bool) error {
	out := cmd.OutOrStdout()

	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed, color.Bold)

	fmt.Fprintln(out)
	green.Fprintln(out, "=== NEW MNEMONIC PHRASE ===")
	fmt.Fprintln(out)

	red.Fprintln(out, "⚠️  IMPORTANT SECURITY NOTICE:")
	fmt.Fprintln(out, "Anyone with this phrase can spend the derived keys.")
	fmt.Fprintln(out, "Write it down offline and never share it.")
	fmt.Fprintln(out)

	if showEntropy {
		yellow.Fprintf(out, "Entropy (hex): %s\n\n", hex.EncodeToString(ent))
	}

	words := phrase.Words()
	for i, w := range words {
		fmt.Fprintf(out, "%2d. %-12s", i+1, w)
		if (i+1)%4 == 0 {
			fmt.Fprintln(out)
		}
	}
	if len(words)%4 != 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Phrase: %s\n", phrase.String())
	return nil
}
