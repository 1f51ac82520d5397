package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/PBSGlenn/ledgerhound/internal/reconcile"
)

func commitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <account-a> <account-b>",
		Short: "Merge previewed transfer matches at or above a score threshold",
		Long: `Runs the same preview as 'ledgerhound match', selects the pairs scoring at
or above --min-score, and merges each one atomically. The candidate on
account-a survives and the account-b side is absorbed into it.

With --dry-run the selection is printed and the mutation step is skipped;
everything up to that point runs through the same code path as a real commit.`,
		Args: cobra.ExactArgs(2),
	}

	parseWindow := windowFlags(cmd)
	cmd.Flags().Int("min-score", 65, "minimum score a previewed pair needs to be committed")
	cmd.Flags().Bool("dry-run", false, "print the would-be result without touching the ledger")

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

		minScore, _ := cmd.Flags().GetInt("min-score")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		db, svc, err := openService()
		if err != nil {
			return err
		}
		defer db.Close()

		preview, err := svc.MatchAccounts(cmd.Context(), accountA, accountB, window)
		if err != nil {
			return fmt.Errorf("matching accounts: %w", err)
		}

		var pairs []reconcile.MergePair

		for _, m := range preview.Matches {
			if m.Score < minScore {
				continue
			}

			pairs = append(pairs, reconcile.MergePair{
				KeepID: m.A.Transaction.ID,
				DropID: m.B.Transaction.ID,
			})
		}

		if len(pairs) == 0 {
			fmt.Printf("no pairs at or above score %d\n", minScore)
			return nil
		}

		if dryRun {
			fmt.Printf("dry run: would merge %d pair(s)\n", len(pairs))

			for _, p := range pairs {
				fmt.Printf("  %s <- %s\n", p.KeepID, p.DropID)
			}

			return nil
		}

		result := svc.Commit(cmd.Context(), pairs)

		fmt.Printf("merged %d, skipped %d\n", result.Merged, result.Skipped)

		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e)
		}

		return nil
	}

	return cmd
}
