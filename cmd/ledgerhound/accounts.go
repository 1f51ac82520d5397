package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PBSGlenn/ledgerhound/internal/ledger"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List ledger accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, svc, err := openService()
			if err != nil {
				return err
			}
			defer db.Close()

			var kind *ledger.AccountKind

			if kindStr, _ := cmd.Flags().GetString("kind"); kindStr != "" {
				k := ledger.AccountKind(kindStr)
				if !k.Valid() {
					return fmt.Errorf("invalid kind %q (transfer or category)", kindStr)
				}

				kind = &k
			}

			accounts, err := svc.Accounts(cmd.Context(), kind)
			if err != nil {
				return fmt.Errorf("listing accounts: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "ID\tKIND\tNAME")

			for _, a := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Kind, a.Name)
			}

			return nil
		},
	}

	cmd.Flags().String("kind", "", "filter by account kind (transfer, category)")

	return cmd
}
