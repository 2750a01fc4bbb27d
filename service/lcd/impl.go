package lcd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain"
)

var met = metrics.New("lcd")

type client struct {
	client  http.Client
	timeout time.Duration
	lcdUrl  string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		lcdUrl:  strings.TrimSuffix(cfg.LcdUrl, "/"),
	}
}

func (c *client) Balance(ctx bCtx.Ctx, address domain.Address, denom string) (decimal.Decimal, error) {
	// bank reports a zero balance for unknown accounts, auth tells them apart
	acc := accountResponse{}
	if err := c.get(ctx, fmt.Sprintf("%s/cosmos/auth/v1beta1/accounts/%s", c.lcdUrl, address), &acc); err != nil {
		return decimal.Zero, err
	}

	params := url.Values{"denom": {denom}}
	u := fmt.Sprintf("%s/cosmos/bank/v1beta1/balances/%s/by_denom?%s", c.lcdUrl, address, params.Encode())
	resp := balanceResponse{}
	if err := c.get(ctx, u, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Balance.Amount, nil
}

func (c *client) get(ctx bCtx.Ctx, url string, out interface{}) error {
	defer met.BumpTime("get.latency").End()

	tctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(tctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return err
	}

	if resp.StatusCode != http.StatusOK {
		e := errorResponse{}
		if json.Unmarshal(body, &e) == nil && (e.Code == codeNotFound || strings.Contains(e.Message, "not found")) {
			return domain.ErrAccountNotFound
		}
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}

	if err := json.Unmarshal(body, out); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	return nil
}
