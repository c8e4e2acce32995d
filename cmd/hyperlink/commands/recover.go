package commands

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"hyperlink/internal/domain"
)

// recover <link>: rebuild the keypair behind a link.
func recoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recover <link>",
		Short: "Recover the keypair behind a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(strings.TrimSpace(args[0]))
			if err != nil || !u.IsAbs() {
				return fmt.Errorf("%w: %q", domain.ErrInvalidURL, args[0])
			}

			pw := password
			if pw == "" {
				// Only v2 links need a password; ask before deriving anything.
				if v, _, perr := appCtx.Codec.Parse(u); perr == nil && v.RequiresPassword() {
					if pw, err = promptPassword(cmd, "Password: "); err != nil {
						return err
					}
				}
			}

			hl, err := appCtx.Links.RecoverFromString(u.String(), pw)
			if err != nil {
				return fmt.Errorf("recovering link: %w", err)
			}
			return printLink(cmd, hl)
		},
	}
}
