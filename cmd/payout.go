package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/inflation"
)

type payoutOpts struct {
	era      uint32
	tokens   string
	issuance string
	// tokensOnly computes the payout without issuance, no cutover applies.
	tokensOnly bool
}

func payoutCmd() *cobra.Command {
	var opts payoutOpts
	cmd := &cobra.Command{
		Use:   "payout",
		Short: "compute the staker and maximum payout of one era",
		Long: "compute the staker and maximum payout of one era.\n" +
			"Without --issuance the payout is computed from total tokens only and the cutover does not apply.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.tokensOnly = !cmd.Flags().Changed("issuance")
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			out := cmd.OutOrStdout()
			switch a.width {
			case WidthU64:
				return payout[arith.U64](a, out, opts)
			case WidthU256:
				return payout[arith.U256](a, out, opts)
			}
			return payout[arith.U128](a, out, opts)
		},
	}
	cmd.Flags().Uint32Var(&opts.era, "era", 0, "era index")
	cmd.Flags().StringVar(&opts.tokens, "tokens", "0", "total tokens")
	cmd.Flags().StringVar(&opts.issuance, "issuance", "0", "total issuance before the era is minted")
	return cmd
}

func payout[T arith.Amount[T]](a *app, w io.Writer, opts payoutOpts) error {
	ev, err := evaluator[T](a)
	if err != nil {
		return err
	}
	tokens, err := arith.Parse[T](opts.tokens)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	era := types.EraIndex(opts.era)
	var out inflation.Payout[T]
	if opts.tokensOnly {
		out = ev.PayoutTokens(era, tokens)
	} else {
		issuance, err := arith.Parse[T](opts.issuance)
		if err != nil {
			return fmt.Errorf("issuance: %w", err)
		}
		out = ev.Payout(era, tokens, issuance)
	}
	a.log.Debug("computed payout", era.Field(), zap.Bool("tokens_only", opts.tokensOnly))
	fmt.Fprintf(w, "%-10s%s\n", "era", era)
	fmt.Fprintf(w, "%-10s%s\n", "version", ev.Version(era))
	fmt.Fprintf(w, "%-10s%s\n", "phase", out.Phase)
	fmt.Fprintf(w, "%-10s%s\n", "staker", out.Staker)
	fmt.Fprintf(w, "%-10s%s\n", "maximum", out.Maximum)
	fmt.Fprintf(w, "%-10s%s\n", "treasury", out.Treasury())
	return nil
}
