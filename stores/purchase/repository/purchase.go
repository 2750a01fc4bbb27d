package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/database/mongoclient"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/purchase"
	"github.com/x-xyz/asteroid-market/service/query"
)

var timeNow = time.Now

// Indexes are the indexes FindOne and FindAll rely on
func Indexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "buyer", Value: 1}, {Key: "updatedAt", Value: -1}}},
		{Keys: bson.D{{Key: "state", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}
}

type purchaseRepo struct {
	q query.Mongo
}

func NewPurchaseRepo(q query.Mongo) purchase.Repo {
	return &purchaseRepo{q: q}
}

func (r *purchaseRepo) Create(c bCtx.Ctx, flow *purchase.Flow) error {
	now := timeNow()
	flow.CreatedAt = now
	flow.UpdatedAt = now
	flow.Version = 1
	// bech32 is case insensitive, store one form so buyer lookups match
	flow.Buyer = flow.Buyer.ToLower()
	if err := r.q.Insert(c, domain.TablePurchaseFlows, flow); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *purchaseRepo) FindOne(c bCtx.Ctx, id string) (*purchase.Flow, error) {
	res := &purchase.Flow{}
	if err := r.q.FindOne(c, domain.TablePurchaseFlows, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

// FindAll returns the most recently updated flows first
func (r *purchaseRepo) FindAll(c bCtx.Ctx, optFns ...purchase.FindAllOptionsFunc) ([]*purchase.Flow, error) {
	opts, err := purchase.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("purchase.GetFindAllOptions failed")
		return nil, err
	}

	if opts.Buyer != nil {
		buyer := opts.Buyer.ToLower()
		opts.Buyer = &buyer
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithFields(log.Fields{
			"opts": opts,
			"err":  err,
		}).Error("MakeBsonM failed")
		return nil, err
	}
	if len(opts.States) > 0 {
		qry["state"] = bson.M{"$in": opts.States}
	}

	res := []*purchase.Flow{}
	if err := r.q.Search(c, domain.TablePurchaseFlows, 0, opts.Limit, "-updatedAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

// Save only replaces the document at the version flow was loaded with. On
// failure flow keeps its previous version and updatedAt.
func (r *purchaseRepo) Save(c bCtx.Ctx, flow *purchase.Flow) error {
	version, updatedAt := flow.Version, flow.UpdatedAt
	flow.Buyer = flow.Buyer.ToLower()
	flow.Version++
	flow.UpdatedAt = timeNow()

	err := r.q.Replace(c, domain.TablePurchaseFlows, bson.M{"id": flow.Id, "version": version}, flow)
	if err == nil {
		return nil
	}
	flow.Version, flow.UpdatedAt = version, updatedAt
	if err == query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":      flow.Id,
			"version": version,
		}).Warn("flow saved by someone else")
		return domain.ErrConflict
	}
	c.WithFields(log.Fields{
		"id":  flow.Id,
		"err": err,
	}).Error("q.Replace failed")
	return err
}
