package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	healthCheckPeriod = time.Minute
)

var (
	delBatchSize = 100
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New redis service on top of a pool
func New(name string, metrics metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  metrics,
		pool: pool,
	}
}

func (r *redImpl) Name() string {
	return r.name
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// close asap so the pool does not have to hold more connections
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(funcName, key string) []string {
	return []string{"func", funcName, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo("GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("GET redis failed")
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo("SET", key, val)
	} else {
		_, err = r.connDo("SET", key, val, "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("SET redis failed")
	}
	return err
}

func (r *redImpl) SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error) {
	defer r.met.BumpTime("time", r.tags("setnx", key)...).End()

	var (
		reply interface{}
		err   error
	)
	if expire == Forever {
		reply, err = r.connDo("SET", key, val, "NX")
	} else {
		reply, err = r.connDo("SET", key, val, "NX", "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("SET NX redis failed")
		return false, err
	}
	// a nil reply means the key was already there
	return reply != nil, nil
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected := 0
	for start := 0; start < len(ks); start += delBatchSize {
		end := start + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.connDo("DEL", redis.Args{}.AddFlat(ks[start:end])...))
		if err != nil {
			c.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}
	return affected, nil
}

func (r *redImpl) Exists(c ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", r.tags("exists", key)...).End()

	res, err := redis.Bool(r.connDo("EXISTS", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("EXISTS redis failed")
		return false, err
	}
	return res, nil
}

func (r *redImpl) TTL(c ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()

	ttl, err := redis.Int(r.connDo("TTL", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("TTL redis failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Publish(c ctx.Ctx, channel string, payload []byte) (int, error) {
	tags := r.tags("publish", channel)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(payload)), tags...)

	receivers, err := redis.Int(r.connDo("PUBLISH", channel, payload))
	if err != nil {
		c.WithField("err", err).WithField("channel", channel).Error("PUBLISH redis failed")
		return 0, err
	}
	return receivers, nil
}

func (r *redImpl) PSubscribe(c ctx.Ctx, pattern string, handler Handler) error {
	conn, err := r.getConn()
	if err != nil {
		return err
	}
	psc := redis.PubSubConn{Conn: conn}
	defer psc.Close()

	if err := psc.PSubscribe(pattern); err != nil {
		c.WithField("err", err).WithField("pattern", pattern).Error("PSUBSCRIBE redis failed")
		return err
	}

	done := make(chan error, 1)
	go func() {
		for {
			switch v := psc.ReceiveWithTimeout(2 * healthCheckPeriod).(type) {
			case redis.Message:
				r.met.BumpSum("pubsub.message", 1, "cluster", r.name, "pattern", pattern)
				handler(c, v.Channel, v.Data)
			case redis.Subscription:
				if v.Count == 0 {
					done <- nil
					return
				}
			case error:
				done <- v
				return
			}
		}
	}()

	ticker := time.NewTicker(healthCheckPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.Done():
			// unblocks Receive, the reader exits on the unsubscribe ack or the read error
			_ = psc.PUnsubscribe()
			<-done
			return c.Err()
		case err := <-done:
			if err != nil {
				c.WithField("err", err).WithField("pattern", pattern).Error("pubsub receive failed")
			}
			return err
		case <-ticker.C:
			if err := psc.Ping(""); err != nil {
				c.WithField("err", err).Warn("pubsub ping failed")
			}
		}
	}
}
