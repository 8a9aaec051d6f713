package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	itunes "github.com/kailas-cloud/itunes-search"
)

func newSendCommand(a *app) *cobra.Command {
	var (
		f       queryFlags
		headers []string
	)
	cmd := &cobra.Command{
		Use:   "send <term>",
		Short: "Send the search and print the raw response body",
		Long: `Send performs a single GET and copies the response body to stdout unchanged.
A non-2xx status is reported on stderr but is not treated as a failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.buildRequest(cmd, args[0], &f)
			if err != nil {
				return err
			}

			editors := []itunes.RequestEditorFn{itunes.WithHeader("User-Agent", a.userAgent())}
			for _, h := range headers {
				k, v, err := parseHeader(h)
				if err != nil {
					return err
				}
				editors = append(editors, itunes.WithHeader(k, v))
			}

			a.logger.Info("sending search", zap.String("url", req.URL()))

			resp, err := req.Send(cmd.Context(), editors...)
			if err != nil {
				return fmt.Errorf("send: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				fmt.Fprintf(cmd.ErrOrStderr(), "status: %s\n", resp.Status)
			}
			if _, err := io.Copy(cmd.OutOrStdout(), resp.Body); err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, `extra request header "Key: value" (repeatable)`)
	return cmd
}
