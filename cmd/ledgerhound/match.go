package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <account-a> <account-b>",
		Short: "Preview transfer matches between two accounts",
		Long: `Extracts unresolved transfer candidates on both accounts, scores every
cross pair and solves a globally optimal 1:1 pairing. Read-only; nothing is
merged until 'ledgerhound commit'.`,
		Args: cobra.ExactArgs(2),
	}

	parseWindow := windowFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		accountA, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid account-a id: %w", err)
		}

		accountB, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("invalid account-b id: %w", err)
		}

		window, err := parseWindow()
		if err != nil {
			return err
		}

		db, svc, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		preview, err := svc.MatchAccounts(cmd.Context(), accountA, accountB, window)
		if err != nil {
			return fmt.Errorf("matching accounts: %w", err)
		}

		printPreview(preview)

		return nil
	}

	return cmd
}

func printPreview(preview *reconcile.MatchPreview) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "SCORE\tTIER\tDATE A\tDATE B\tAMOUNT A\tAMOUNT B\tREASONS")

	for _, m := range preview.Matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Score,
			m.Tier,
			m.A.Date.Format(time.DateOnly),
			m.B.Date.Format(time.DateOnly),
			m.A.Amount.StringFixed(2),
			m.B.Amount.StringFixed(2),
			strings.Join(m.Reasons, "; "),
		)
	}

	w.Flush()

	fmt.Printf("\n%d exact, %d probable, %d possible; %d unmatched on A, %d unmatched on B\n",
		preview.Summary.Exact,
		preview.Summary.Probable,
		preview.Summary.Possible,
		len(preview.UnmatchedA),
		len(preview.UnmatchedB),
	)
}
