package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/database/mongoclient"
	"github.com/x-xyz/asteroid-market/base/database/redisclient"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	"github.com/x-xyz/asteroid-market/base/tracker"
	"github.com/x-xyz/asteroid-market/domain"
	mmiddleware "github.com/x-xyz/asteroid-market/middleware"
	"github.com/x-xyz/asteroid-market/service/cache"
	redisProvider "github.com/x-xyz/asteroid-market/service/cache/provider/redis"
	"github.com/x-xyz/asteroid-market/service/chain"
	"github.com/x-xyz/asteroid-market/service/indexer"
	"github.com/x-xyz/asteroid-market/service/lcd"
	"github.com/x-xyz/asteroid-market/service/notify"
	"github.com/x-xyz/asteroid-market/service/query"
	"github.com/x-xyz/asteroid-market/service/redis"
	"github.com/x-xyz/asteroid-market/service/wallet"
	chain_usecase "github.com/x-xyz/asteroid-market/stores/chain/usecase"
	listing_repository "github.com/x-xyz/asteroid-market/stores/listing/repository"
	purchase_repository "github.com/x-xyz/asteroid-market/stores/purchase/repository"
	purchase_usecase "github.com/x-xyz/asteroid-market/stores/purchase/usecase"
	token_repository "github.com/x-xyz/asteroid-market/stores/token/repository"
	tx_usecase "github.com/x-xyz/asteroid-market/stores/tx/usecase"
)

func init() {
	pflag.String("config", "infra/configs/tracker/config.yaml", "path of the config file")
	pflag.StringSlice("tickers", nil, "tokens to track, overrides tracker.tickers")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	tickers := viper.GetStringSlice("tickers")
	if len(tickers) == 0 {
		tickers = viper.GetStringSlice("tracker.tickers")
	}
	chainId := domain.ChainId(viper.GetString("chain.chainId"))
	denom := viper.GetString("chain.denom")
	httpTimeout := viper.GetDuration("http.timeout")

	ctx.WithFields(log.Fields{
		"chainId": chainId,
		"tickers": tickers,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	ctx.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(redisclient.Cfg{
		URI:            viper.GetString("redis_cache.uri"),
		Password:       viper.GetString("redis_cache.password"),
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)
	// shared with the api, no local layer here
	redisLayer := redisProvider.NewRedis(redisCache)
	newCache := func(ttlKey string) cache.Service {
		return cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration(ttlKey),
			Pfx:   viper.GetString("cache.prefix"),
			Cache: redisLayer,
		})
	}

	indexerClient := indexer.NewClient(&indexer.ClientCfg{
		HttpClient:     http.Client{},
		Timeout:        httpTimeout,
		GraphqlUrl:     viper.GetString("indexer.graphqlUrl"),
		WsUrl:          viper.GetString("indexer.wsUrl"),
		ReconnectDelay: viper.GetDuration("indexer.reconnectDelay"),
	})
	nodeClient, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrl:  viper.GetString("chain.rpcUrl"),
		Timeout: httpTimeout,
	})
	if err != nil {
		ctx.WithField("err", err).Panic("chain.NewClient failed")
	}
	walletProvider := wallet.NewClient(&wallet.ClientCfg{
		HttpClient: http.Client{},
		SignerUrl:  viper.GetString("wallet.signerUrl"),
	})
	notifier, err := notify.NewDiscord(notify.DiscordCfg{
		DiscordBotKey:    viper.GetString("discord.botKey"),
		DiscordChannelId: viper.GetString("discord.channelId"),
		ExplorerUrl:      viper.GetString("discord.explorerUrl"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("notify.NewDiscord failed")
	}

	chainStatus := chain_usecase.NewStatusUseCase(&chain_usecase.StatusUseCaseCfg{
		ChainId: chainId,
		Indexer: indexerClient,
		Node:    nodeClient,
		Cache:   newCache("cache.heightTtl"),
	})
	tokenRepo := token_repository.NewTokenRepo(indexerClient, newCache("cache.tokenTtl"))
	listingRepo := listing_repository.NewListingRepo(&listing_repository.ListingRepoCfg{
		Indexer:   indexerClient,
		Cache:     newCache("cache.listingTtl"),
		PageCache: newCache("cache.listingTtl"),
	})

	orchestrator := purchase_usecase.New(&purchase_usecase.OrchestratorCfg{
		Repo:     purchase_repository.NewPurchaseRepo(q),
		Listings: listingRepo,
		Chain:    chainStatus,
		Wallet:   walletProvider,
		Builder: tx_usecase.NewBuilder(tx_usecase.BuilderCfg{
			ChainId:             chainId,
			UrnChainId:          viper.GetString("chain.urnChainId"),
			Denom:               denom,
			CarrierAmount:       viper.GetInt64("tx.carrierAmount"),
			ProtocolFeeReceiver: domain.Address(viper.GetString("tx.protocolFeeReceiver")),
			ProtocolFeeRate:     decimal.RequireFromString(viper.GetString("tx.protocolFeeRate")),
		}),
		Submitter: tx_usecase.NewSubmitter(&tx_usecase.SubmitterCfg{
			Wallet: walletProvider,
			Estimator: tx_usecase.NewFeeEstimator(tx_usecase.FeeEstimatorCfg{
				Denom:      denom,
				GasPrice:   decimal.RequireFromString(viper.GetString("tx.gasPrice")),
				BaseGas:    viper.GetUint64("tx.baseGas"),
				PerMsgGas:  viper.GetUint64("tx.perMsgGas"),
				PerByteGas: viper.GetUint64("tx.perByteGas"),
				MaxGas:     viper.GetUint64("tx.maxGas"),
			}),
			Waiter: tx_usecase.NewWaiter(&tx_usecase.WaiterCfg{
				Indexer:        indexerClient,
				Node:           nodeClient,
				ConfirmTimeout: viper.GetDuration("tx.confirmTimeout"),
				PollInterval:   viper.GetDuration("tx.pollInterval"),
				MaxInterval:    viper.GetDuration("tx.maxPollInterval"),
			}),
			Lcd: lcd.NewClient(&lcd.ClientCfg{
				HttpClient: http.Client{},
				Timeout:    httpTimeout,
				LcdUrl:     viper.GetString("chain.lcdUrl"),
			}),
			Denom: denom,
		}),
		Notifier:   notifier,
		StaleAfter: viper.GetDuration("tx.staleAfter"),
	})

	errCh := make(chan error, len(tickers)+1)

	trackers := []*tracker.ListingTracker{}
	for _, ticker := range tickers {
		t := tracker.NewListingTracker(&tracker.ListingTrackerCfg{
			Ticker:     ticker,
			Tokens:     tokenRepo,
			Subscriber: indexerClient,
			Listings:   listingRepo,
			Publisher:  redisCache,
			Limit:      viper.GetInt("tracker.snapshotLimit"),
			ErrorCh:    errCh,
		})
		t.Start(ctx)
		trackers = append(trackers, t)
	}

	refresher := tracker.NewFlowRefresher(&tracker.FlowRefresherCfg{
		Purchases: orchestrator,
		Interval:  viper.GetDuration("tracker.refreshInterval"),
		Workers:   viper.GetInt("tracker.refreshWorkers"),
		BatchSize: viper.GetInt("tracker.refreshBatchSize"),
	})
	refresher.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case err := <-errCh:
		ctx.WithField("err", err).Error("tracker error")
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("received signal")
	}

	go func() {
		for range errCh {
		}
	}()
	cancel()

	refresher.Wait()
	for _, t := range trackers {
		t.Wait()
	}
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Cfg{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	return query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
}
