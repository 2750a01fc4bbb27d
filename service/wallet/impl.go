package wallet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/base/validator"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/tx"
	"github.com/x-xyz/asteroid-market/domain/wallet"
)

var met = metrics.New("wallet")

type client struct {
	client    http.Client
	signerUrl string

	mu      sync.Mutex
	address domain.Address
}

// NewClient talks to a signer daemon holding the keys
func NewClient(cfg *ClientCfg) wallet.Provider {
	return &client{
		client:    cfg.HttpClient,
		signerUrl: strings.TrimSuffix(cfg.SignerUrl, "/"),
	}
}

func (c *client) Address(ctx bCtx.Ctx) (domain.Address, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.address.IsEmpty() {
		return c.address, nil
	}

	resp := addressResponse{}
	if err := c.do(ctx, http.MethodGet, "/address", nil, &resp); err != nil {
		ctx.WithField("err", err).Error("c.do failed")
		return "", err
	}
	if !validator.IsValidAddress(resp.Address.String()) {
		ctx.WithField("address", resp.Address).Error("signer returned an invalid address")
		return "", domain.ErrInvalidAddress
	}
	c.address = resp.Address
	return c.address, nil
}

func (c *client) SignAndBroadcast(ctx bCtx.Ctx, intent *tx.Intent) (domain.TxHash, error) {
	defer met.BumpTime("sign.time").End()

	resp := broadcastResponse{}
	if err := c.do(ctx, http.MethodPost, "/sign_and_broadcast", intent, &resp); err != nil {
		met.BumpSum("sign.err", 1)
		return "", err
	}
	if resp.Code != 0 {
		met.BumpSum("broadcast.err", 1, "code", fmt.Sprint(resp.Code))
		ctx.WithFields(log.Fields{
			"code":   resp.Code,
			"rawLog": resp.RawLog,
			"txHash": resp.TxHash,
		}).Warn("broadcast refused")
		return resp.TxHash.ToUpper(), errors.New(resp.RawLog)
	}
	if resp.TxHash.IsEmpty() {
		return "", ErrEmptyTxHash
	}
	return resp.TxHash.ToUpper(), nil
}

func (c *client) do(ctx bCtx.Ctx, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	url := c.signerUrl + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return domain.ErrRequestRejected
	case resp.StatusCode != http.StatusOK:
		e := errorResponse{}
		if jerr := json.Unmarshal(data, &e); jerr == nil && e.Error != "" {
			if strings.Contains(strings.ToLower(e.Error), "rejected") {
				return domain.ErrRequestRejected
			}
			return xerrors.Errorf("%w: %s", ErrStatusCodeNotOk, e.Error)
		}
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}

	if err := json.Unmarshal(data, out); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	return nil
}
