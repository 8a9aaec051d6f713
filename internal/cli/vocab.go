package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	itunes "github.com/kailas-cloud/itunes-search"
)

func newVocabCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab [media]",
		Short: "List media categories and their legal entities and attributes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			medias := itunes.Medias()
			if len(args) == 1 {
				m, err := itunes.ParseMedia(args[0])
				if err != nil {
					return err //nolint:wrapcheck // already prefixed
				}
				medias = []itunes.Media{m}
			}
			for _, m := range medias {
				writeVocabulary(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func writeVocabulary(w io.Writer, m itunes.Media) {
	attrs := strings.Join(itunes.Attributes(m), ", ")
	if attrs == "" {
		attrs = "(none)"
	}
	fmt.Fprintln(w, m)
	fmt.Fprintf(w, "  entities:   %s\n", strings.Join(itunes.Entities(m), ", "))
	fmt.Fprintf(w, "  attributes: %s\n", attrs)
}
