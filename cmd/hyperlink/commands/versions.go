package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hyperlink/internal/domain"
	"hyperlink/internal/link"
)

func versionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List supported link versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range domain.Versions {
				s, err := link.SchemeFor(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\tsecret=%d bytes\tfragment=#%s<base58>\tpassword=%t\n",
					int(v), s.SecretLen(), s.Prefix(), v.RequiresPassword())
			}
			return nil
		},
	}
}
