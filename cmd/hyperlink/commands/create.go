package commands

import (
	"github.com/spf13/cobra"

	"hyperlink/internal/domain"
)

func createCmd() *cobra.Command {
	var version int
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new link and its keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := domain.Version(version)
			if !v.Valid() {
				return domain.ErrInvalidVersion
			}
			pw := password
			if v.RequiresPassword() && pw == "" {
				var err error
				if pw, err = promptPassword(cmd, "Choose password: "); err != nil {
					return err
				}
			}

			hl, err := appCtx.Links.Create(v, pw)
			if err != nil {
				return err
			}
			return printLink(cmd, hl)
		},
	}
	cmd.Flags().IntVar(&version, "version", int(domain.V1), "link version (0, 1 or 2)")
	return cmd
}
