package inscription

import (
	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/tx"
)

// InscribeRequest carries raw content, base64 encoded in json
type InscribeRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=512"`
	Content     []byte `json:"content" validate:"required"`
}

type UseCase interface {
	Inscribe(c ctx.Ctx, req *InscribeRequest) (*tx.Receipt, error)
}
