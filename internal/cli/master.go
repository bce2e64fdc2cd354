package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seedkit/seedkit/internal/validation"
	"github.com/seedkit/seedkit/pkg/crypto/hdkey"
	"github.com/seedkit/seedkit/pkg/secure"
)

func NewMasterCommand() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "master [seed-hex]",
		Short: "Derive the BIP-32 master key from a BIP-39 seed",
		Long: `Derive the BIP-32 master private key and chain code from a 64-byte
BIP-39 seed given as a 128-character hex string, and print the xprv
and WIF serializations.

To create an Electrum spending wallet from the xprv:
  New Wallet -> Standard wallet -> Use a master key -> paste the xprv.

The WIF imports as a single-key wallet:
  New Wallet -> Import Bitcoin addresses or private keys -> paste it.`,
		Example: `  # Derive from a seed given on the command line
  seedkit master 2f00201a843bf367ed45fda52ea0d3aba21ee730ad1a93189e67ae0e6faae4bb3a32629b955d1cfcde3becc25f2e39519e1e5d9ee8318c6217b11bcedb9f9683

  # Prompt for the seed (hidden input)
  seedkit master`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seedHex string
			if len(args) == 1 {
				seedHex = args[0]
			} else {
				var err error
				seedHex, err = readPassphrase("Enter BIP-39 seed (hex): ")
				if err != nil {
					return fmt.Errorf("failed to read seed: %w", err)
				}
			}

			seed, err := validation.DecodeSeedHex(seedHex)
			if err != nil {
				return err
			}
			defer secure.Zero(seed)

			km, err := hdkey.DeriveMaster(seed)
			if err != nil {
				return fmt.Errorf("failed to derive master key: %w", err)
			}
			defer km.Zero()

			if outputJSON {
				result := map[string]interface{}{
					"private_key": hex.EncodeToString(km.PrivateKey[:]),
					"chain_code":  hex.EncodeToString(km.ChainCode[:]),
					"xprv":        km.ExtendedPrivateKey(),
					"wif":         km.WIF(),
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			return outputMasterText(cmd, km)
		},
	}

	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")

	return cmd
}

func outputMasterText(cmd *cobra.Command, km *hdkey.KeyMaterial) error {
	out := cmd.OutOrStdout()

	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	fmt.Fprintln(out)
	green.Fprintln(out, "=== BIP-32 MASTER KEY ===")
	fmt.Fprintln(out)

	red.Fprintln(out, "⚠️  This output contains private key material.")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Master Private Key: %s\n", hex.EncodeToString(km.PrivateKey[:]))
	fmt.Fprintf(out, "Master Chain Code:  %s\n", hex.EncodeToString(km.ChainCode[:]))
	fmt.Fprintln(out)

	cyan.Fprintln(out, "Extended private key (xprv):")
	fmt.Fprintf(out, "  %s\n", km.ExtendedPrivateKey())
	fmt.Fprintln(out)

	cyan.Fprintln(out, "Wallet Import Format (WIF, uncompressed):")
	fmt.Fprintf(out, "  %s\n", km.WIF())
	return nil
}
