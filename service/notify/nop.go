package notify

import (
	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/purchase"
)

type nop struct{}

func NewNop() purchase.Notifier {
	return nop{}
}

func (nop) Notify(c bCtx.Ctx, flow *purchase.Flow) error {
	c.WithField("flowId", flow.Id).WithField("state", flow.State).Info("flow finished")
	return nil
}
