package indexer

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/xerrors"

	"github.com/x-xyz/asteroid-market/base/backoff"
	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain/listing"
)

// graphql-transport-ws message types
const (
	msgConnectionInit = "connection_init"
	msgConnectionAck  = "connection_ack"
	msgPing           = "ping"
	msgPong           = "pong"
	msgSubscribe      = "subscribe"
	msgNext           = "next"
	msgError          = "error"
	msgComplete       = "complete"

	wsSubprotocol  = "graphql-transport-ws"
	subscriptionId = "1"

	handshakeTimeout = 15 * time.Second
	writeWait        = 10 * time.Second
	// the server pings every few seconds, anything longer means the link is gone
	readWait = 60 * time.Second
)

type wsMessage struct {
	Id      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (c *client) SubscribeTokenListings(ctx bCtx.Ctx, tokenId int64, limit int) (<-chan []*listing.Listing, error) {
	ctx = bCtx.WithValue(ctx, "tokenId", tokenId)
	payload, err := json.Marshal(graphqlRequest{
		Query: subscriptionTokenListings,
		Variables: map[string]interface{}{
			"where": openListingsWhere(tokenId, nil),
			"limit": limit,
		},
	})
	if err != nil {
		return nil, err
	}

	conn, err := c.dial(ctx, payload)
	if err != nil {
		ctx.WithField("err", err).Error("c.dial failed")
		return nil, err
	}

	out := make(chan []*listing.Listing)
	go func() {
		defer close(out)
		bo := backoff.NewExponential(c.reconnectDelay, maxReconnectDelay)
		for {
			err := c.readLoop(ctx, conn, out, bo)
			conn.Close()
			if ctx.Err() != nil {
				return
			}
			c.met.BumpSum("subscription.reconnect", 1)
			ctx.WithField("err", err).Warn("subscription dropped, reconnecting")

			for {
				if err := bo.Backoff(ctx); err != nil {
					return
				}
				if conn, err = c.dial(ctx, payload); err == nil {
					break
				}
				ctx.WithFields(log.Fields{
					"err":     err,
					"attempt": bo.Attempts(),
				}).Warn("c.dial failed")
			}
		}
	}()
	return out, nil
}

// dial connects, waits for the ack and starts the subscription
func (c *client) dial(ctx bCtx.Ctx, payload []byte) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
		Subprotocols:     []string{wsSubprotocol},
		Proxy:            http.ProxyFromEnvironment,
	}
	conn, _, err := dialer.DialContext(ctx, c.wsUrl, nil)
	if err != nil {
		return nil, err
	}

	if err := writeMessage(conn, wsMessage{Type: msgConnectionInit, Payload: json.RawMessage(`{}`)}); err != nil {
		conn.Close()
		return nil, err
	}

	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	for {
		msg := wsMessage{}
		if err := conn.ReadJSON(&msg); err != nil {
			conn.Close()
			return nil, err
		}
		if msg.Type == msgConnectionAck {
			break
		}
		if msg.Type == msgPing {
			if err := writeMessage(conn, wsMessage{Type: msgPong}); err != nil {
				conn.Close()
				return nil, err
			}
		}
	}

	if err := writeMessage(conn, wsMessage{Id: subscriptionId, Type: msgSubscribe, Payload: payload}); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// readLoop forwards snapshots until the connection fails or ctx is done
func (c *client) readLoop(ctx bCtx.Ctx, conn *websocket.Conn, out chan<- []*listing.Listing, bo *backoff.Backoff) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			// unblocks ReadJSON
			conn.Close()
		case <-stop:
		}
	}()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		msg := wsMessage{}
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}

		switch msg.Type {
		case msgPing:
			if err := writeMessage(conn, wsMessage{Type: msgPong}); err != nil {
				return err
			}
		case msgNext:
			resp := graphqlResponse{}
			if err := json.Unmarshal(msg.Payload, &resp); err != nil {
				ctx.WithField("err", err).Error("json.Unmarshal payload failed")
				continue
			}
			if len(resp.Errors) > 0 {
				return xerrors.Errorf("%w: %s", ErrSubscription, resp.Errors[0].Message)
			}
			data := struct {
				Details []cft20Row `json:"marketplace_cft20_detail"`
			}{}
			if err := json.Unmarshal(resp.Data, &data); err != nil {
				ctx.WithField("err", err).Error("json.Unmarshal data failed")
				continue
			}
			bo.Reset()
			select {
			case out <- cft20RowsToListings(data.Details):
			case <-ctx.Done():
				return ctx.Err()
			}
		case msgError:
			return xerrors.Errorf("%w: %s", ErrSubscription, string(msg.Payload))
		case msgComplete:
			return xerrors.Errorf("%w: completed by server", ErrSubscription)
		}
	}
}

func writeMessage(conn *websocket.Conn, msg wsMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
