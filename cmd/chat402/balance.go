package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ievan-lhr/go-chat402-client/llm"
)

func balanceCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show wallet balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				printError(cmd, err)
				return nil
			}

			bal, err := llm.Balance(cmd.Context(), cfg)
			if err != nil {
				printError(cmd, err)
				return nil
			}

			out := cmd.OutOrStdout()
			total := bal.Data.TotalBalance
			fmt.Fprintf(out, "Total Balance: $%.2f %s\n", total.Amount, total.Currency)
			for _, w := range bal.Data.Wallets {
				fmt.Fprintf(out, "  %-8s %s  %.2f %s\n", w.Network, w.Address, w.Balance.Amount, w.Balance.Currency)
			}
			return nil
		},
	}
}
