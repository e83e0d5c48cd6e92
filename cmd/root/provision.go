package root

import (
	"fmt"
	"strings"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/provision"

	"github.com/spf13/cobra"
)

func newProvisionCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Find or create the LifeOps Data spreadsheet and its tabs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return fmt.Errorf("--token is required")
			}
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := backing.WithAccessToken(cmd.Context(), token)
			info, err := a.google.TokenInfo(ctx, token)
			if err != nil {
				return fmt.Errorf("token rejected: %w", err)
			}

			res, err := a.workbooks.For(info.UserID).Resolve(ctx)
			if err != nil {
				return err
			}
			for _, tab := range provision.Tabs {
				if err := provision.EnsureSheet(ctx, a.google, res.ID, tab); err != nil {
					return fmt.Errorf("tab %s: %w", tab.Title, err)
				}
			}

			path := make([]string, len(res.Path))
			for i, s := range res.Path {
				path[i] = s.String()
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "account:     %s\n", info.Email)
			fmt.Fprintf(out, "spreadsheet: %s (%s)\n", res.ID, strings.Join(path, " -> "))
			fmt.Fprintf(out, "url:         %s\n", backing.SpreadsheetURL(res.ID))
			fmt.Fprintf(out, "tabs:        %d\n", len(provision.Tabs))
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Google OAuth access token")
	return cmd
}
