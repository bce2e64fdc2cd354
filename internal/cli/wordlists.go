package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seedkit/seedkit/pkg/wordlist"
)

func NewWordlistsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlists <dir>",
		Short: "List wordlist files available in a directory",
		Long: `List the files in a directory that can be passed to --wordlist.
Each file is loaded to report its word count; files that fail to load
are flagged instead of skipped.`,
		Example: `  seedkit wordlists ./wordlists`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			files, err := wordlist.Dir(dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no wordlist files found in %s", dir)
			}

			out := cmd.OutOrStdout()
			for i, name := range files {
				list, err := wordlist.Load(filepath.Join(dir, name))
				if err != nil {
					fmt.Fprintf(out, "%2d: %s (unusable: %v)\n", i+1, name, err)
					continue
				}
				note := ""
				if list.ValidateStandard() != nil {
					note = fmt.Sprintf(" (non-standard size; indexes reduced mod %d)", list.Len())
				}
				fmt.Fprintf(out, "%2d: %s — %d words%s\n", i+1, name, list.Len(), note)
			}
			return nil
		},
	}

	return cmd
}
