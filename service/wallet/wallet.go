package wallet

import (
	"errors"
	"net/http"

	"github.com/x-xyz/asteroid-market/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrEmptyTxHash     = errors.New("signer returned no tx hash")
)

type ClientCfg struct {
	// HttpClient must not carry a timeout, signing waits on a human
	HttpClient http.Client
	SignerUrl  string
}

type addressResponse struct {
	Address domain.Address `json:"address"`
}

type broadcastResponse struct {
	TxHash domain.TxHash `json:"txHash"`
	// Code is the CheckTx result, non zero when the node refused the tx
	Code   uint32 `json:"code"`
	RawLog string `json:"rawLog"`
}

type errorResponse struct {
	Error string `json:"error"`
}
