package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hyperlink/internal/crypto"
	"hyperlink/internal/domain"
)

type linkOutput struct {
	URL         string `json:"url"`
	Version     int    `json:"version"`
	PublicKey   string `json:"public_key"`
	Fingerprint string `json:"fingerprint"`
}

func printLink(cmd *cobra.Command, hl *domain.HyperLink) error {
	o := linkOutput{
		URL:         hl.String(),
		Version:     int(hl.Version),
		PublicKey:   hl.Keypair.PublicKeyBase58(),
		Fingerprint: crypto.Fingerprint(hl.Keypair.Public),
	}
	out := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(o)
	}
	fmt.Fprintf(out, "Link:        %s\n", o.URL)
	fmt.Fprintf(out, "Version:     %d\n", o.Version)
	fmt.Fprintf(out, "Public key:  %s\n", o.PublicKey)
	fmt.Fprintf(out, "Fingerprint: %s\n", o.Fingerprint)
	return nil
}
