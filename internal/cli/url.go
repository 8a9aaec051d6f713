package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCommand(a *app) *cobra.Command {
	var f queryFlags
	cmd := &cobra.Command{
		Use:   "url <term>",
		Short: "Print the search URL without sending it",
		Example: `  itunes-search url "jack johnson" --media music --entity musicArtist
  itunes-search url foo -m movie -a directorTerm --limit 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.buildRequest(cmd, args[0], &f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), req.URL())
			return err
		},
	}
	f.register(cmd)
	return cmd
}
