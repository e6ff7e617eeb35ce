package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDrawCmd(cc *cliContext, load func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:     "draw",
		Short:   "Run one draw cycle now and exit",
		Args:    cobra.NoArgs,
		PreRunE: load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), cc.cfg, cc.log)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.drawEngine.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("draw failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Message())
			if w := result.Winner; w != nil {
				fmt.Fprintf(out, "winner:    %s\n", w.WalletAddress)
				fmt.Fprintf(out, "amount:    %d lamports\n", w.Amount)
				fmt.Fprintf(out, "signature: %s\n", w.PayoutSignature)
				fmt.Fprintf(out, "confirmed: %t\n", w.Confirmed)
			}
			return nil
		},
	}
}
