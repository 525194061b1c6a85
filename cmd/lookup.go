package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <path>...",
	Short: "Identify individual game paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		identifier, err := env.identifier(ctx)
		if err != nil {
			return err
		}

		for _, path := range args {
			res, err := identifier.Identify(ctx, strings.ToLower(path))
			if err != nil {
				return err
			}
			fmt.Println(path)
			for _, label := range res.Labels() {
				fmt.Printf("  %s\n", label)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lookupCmd)
}
