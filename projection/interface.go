package projection

import (
	"github.com/social-network/DAO/arith"
	"github.com/social-network/DAO/common/types"
	"github.com/social-network/DAO/inflation"
)

//go:generate mockgen -typed -package=projection -destination=./mocks.go -source=./interface.go

// Evaluator is the subset of inflation.Evaluator used by projections.
type Evaluator[T arith.Amount[T]] interface {
	Payout(era types.EraIndex, totalTokens, totalIssuance T) inflation.Payout[T]
	Version(era types.EraIndex) string
}
