package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/projection"
)

type projectOpts struct {
	from     uint32
	count    uint32
	tokens   string
	issuance string
	out      string
}

func projectCmd() *cobra.Command {
	var opts projectOpts
	cmd := &cobra.Command{
		Use:   "project",
		Short: "mint the maximum payout of consecutive eras and print the rows as csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			out := cmd.OutOrStdout()
			switch a.width {
			case WidthU64:
				return project[arith.U64](cmd, a, out, opts)
			case WidthU256:
				return project[arith.U256](cmd, a, out, opts)
			}
			return project[arith.U128](cmd, a, out, opts)
		},
	}
	cmd.Flags().Uint32Var(&opts.from, "from", 0, "first era")
	cmd.Flags().Uint32Var(&opts.count, "count", 10, "number of eras")
	cmd.Flags().StringVar(&opts.tokens, "tokens", "0", "total tokens, constant across eras")
	cmd.Flags().StringVar(&opts.issuance, "issuance", "0", "total issuance before the first era")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write csv to file instead of stdout")
	return cmd
}

func project[T arith.Amount[T]](cmd *cobra.Command, a *app, w io.Writer, opts projectOpts) error {
	ev, err := evaluator[T](a)
	if err != nil {
		return err
	}
	params := projection.Params[T]{
		From: types.EraIndex(opts.from),
		Eras: opts.count,
	}
	if params.TotalTokens, err = arith.Parse[T](opts.tokens); err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	if params.Issuance, err = arith.Parse[T](opts.issuance); err != nil {
		return fmt.Errorf("issuance: %w", err)
	}
	rows, err := projection.Collect(cmd.Context(), a.projectionLog, projection.Evaluator[T](ev), params)
	if err != nil {
		return err
	}
	return writeRows(w, opts.out, rows)
}
