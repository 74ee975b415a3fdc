package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/eczemahub/pkg/config"
	"github.com/doodlesbykumbi/eczemahub/pkg/identity"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <login>",
	Short: "Mint a caller token for the given login",
	Long: `Mint a caller token for the given login.

The token is signed with ECZEMAHUB_TOKEN_KEY and printed to stdout.
Pass it as "Authorization: Bearer <token>" on authenticated endpoints.

Example:
  eczemactl token alice --ttl 1h`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		login := args[0]

		key, err := config.TokenKey()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		ttl, _ := cmd.Flags().GetDuration("ttl")
		if ttl <= 0 {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
				os.Exit(1)
			}
			ttl = cfg.TokenTTL()
		}

		token, err := identity.Mint(key, login, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to mint token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (defaults to the configured TTL)")
}
