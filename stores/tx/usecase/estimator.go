package usecase

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

type FeeEstimatorCfg struct {
	Denom    string
	GasPrice decimal.Decimal
	BaseGas  uint64
	// PerMsgGas is charged for every message
	PerMsgGas uint64
	// PerByteGas is charged for memo and extension bytes, inscriptions are large
	PerByteGas uint64
	// MaxGas caps the estimate, 0 for no cap
	MaxGas uint64
}

type feeEstimator struct {
	cfg FeeEstimatorCfg
}

// NewFeeEstimator prices an intent locally from its shape, no simulation round trip
func NewFeeEstimator(cfg FeeEstimatorCfg) tx.FeeEstimator {
	return &feeEstimator{cfg}
}

func (e *feeEstimator) Estimate(c bCtx.Ctx, intent *tx.Intent) (*tx.Fee, error) {
	if len(intent.Messages) == 0 {
		return nil, domain.NewValidationError("estimate", domain.ErrBadParamInput)
	}

	size := uint64(len(intent.Memo))
	if intent.Extension != nil {
		size += uint64(len(intent.Extension.Metadata) + len(intent.Extension.Content))
	}
	gas := e.cfg.BaseGas + e.cfg.PerMsgGas*uint64(len(intent.Messages)) + e.cfg.PerByteGas*size
	if e.cfg.MaxGas > 0 && gas > e.cfg.MaxGas {
		c.WithField("gas", gas).WithField("maxGas", e.cfg.MaxGas).Warn("gas estimate above cap")
		return nil, domain.NewEstimationError("estimate", domain.ErrBadParamInput)
	}

	amount := e.cfg.GasPrice.Mul(decimal.NewFromInt(int64(gas))).Ceil()
	return &tx.Fee{
		Gas:    gas,
		Amount: []tx.Coin{{Denom: e.cfg.Denom, Amount: amount.IntPart()}},
	}, nil
}
