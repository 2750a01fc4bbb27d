package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/base/database/mongoclient"
	"github.com/x-xyz/asteroid-market/base/database/redisclient"
	"github.com/x-xyz/asteroid-market/base/goroutine"
	"github.com/x-xyz/asteroid-market/base/log"
	"github.com/x-xyz/asteroid-market/base/metrics"
	bValidator "github.com/x-xyz/asteroid-market/base/validator"
	"github.com/x-xyz/asteroid-market/domain"
	"github.com/x-xyz/asteroid-market/domain/keys"
	_ "github.com/x-xyz/asteroid-market/docs"
	mmiddleware "github.com/x-xyz/asteroid-market/middleware"
	"github.com/x-xyz/asteroid-market/service/cache"
	"github.com/x-xyz/asteroid-market/service/cache/provider"
	"github.com/x-xyz/asteroid-market/service/cache/provider/compound"
	"github.com/x-xyz/asteroid-market/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/asteroid-market/service/cache/provider/redis"
	"github.com/x-xyz/asteroid-market/service/chain"
	"github.com/x-xyz/asteroid-market/service/coingecko"
	"github.com/x-xyz/asteroid-market/service/indexer"
	"github.com/x-xyz/asteroid-market/service/lcd"
	"github.com/x-xyz/asteroid-market/service/notify"
	"github.com/x-xyz/asteroid-market/service/query"
	"github.com/x-xyz/asteroid-market/service/redis"
	"github.com/x-xyz/asteroid-market/service/wallet"
	chain_usecase "github.com/x-xyz/asteroid-market/stores/chain/usecase"
	coin_delivery "github.com/x-xyz/asteroid-market/stores/coin/delivery/http"
	hc_delivery "github.com/x-xyz/asteroid-market/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/asteroid-market/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/asteroid-market/stores/healthcheck/usecase"
	inscription_delivery "github.com/x-xyz/asteroid-market/stores/inscription/delivery/http"
	inscription_usecase "github.com/x-xyz/asteroid-market/stores/inscription/usecase"
	listing_delivery "github.com/x-xyz/asteroid-market/stores/listing/delivery/http"
	listing_pubsub "github.com/x-xyz/asteroid-market/stores/listing/delivery/pubsub"
	listing_repository "github.com/x-xyz/asteroid-market/stores/listing/repository"
	listing_usecase "github.com/x-xyz/asteroid-market/stores/listing/usecase"
	purchase_delivery "github.com/x-xyz/asteroid-market/stores/purchase/delivery/http"
	purchase_repository "github.com/x-xyz/asteroid-market/stores/purchase/repository"
	purchase_usecase "github.com/x-xyz/asteroid-market/stores/purchase/usecase"
	token_delivery "github.com/x-xyz/asteroid-market/stores/token/delivery/http"
	token_repository "github.com/x-xyz/asteroid-market/stores/token/repository"
	tx_usecase "github.com/x-xyz/asteroid-market/stores/tx/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// main
//
//	@title			Asteroid Market API
//	@version		1.0
//	@description	Listings, purchases and inscriptions on the Asteroid protocol.
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Cfg{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	if err := mongoClient.EnsureIndexes(context, string(domain.TablePurchaseFlows), purchase_repository.Indexes()...); err != nil {
		context.WithField("err", err).Panic("EnsureIndexes failed")
	}
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(redisclient.Cfg{
		URI:            viper.GetString("redis_cache.uri"),
		Password:       viper.GetString("redis_cache.password"),
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	// a process local layer in front of redis, listing changes from the tracker drop both
	localCacheSize := viper.GetInt("cache.localSizeMB")
	cacheLayers := compound.NewCompound([]provider.Provider{
		primitive.NewPrimitive("local", localCacheSize),
		redisProvider.NewRedis(redisCache),
	})
	mmiddleware.SetupCache(cacheLayers)

	// the tracker invalidates through the same prefix
	cachePfx := viper.GetString("cache.prefix")
	httpTimeout := viper.GetDuration("http.timeout")

	indexerClient := indexer.NewClient(&indexer.ClientCfg{
		HttpClient:     http.Client{},
		Timeout:        httpTimeout,
		GraphqlUrl:     viper.GetString("indexer.graphqlUrl"),
		WsUrl:          viper.GetString("indexer.wsUrl"),
		ReconnectDelay: viper.GetDuration("indexer.reconnectDelay"),
	})
	nodeClient, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:  viper.GetString("chain.rpcUrl"),
		Timeout: httpTimeout,
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}
	lcdClient := lcd.NewClient(&lcd.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		LcdUrl:     viper.GetString("chain.lcdUrl"),
	})
	walletProvider := wallet.NewClient(&wallet.ClientCfg{
		HttpClient: http.Client{},
		SignerUrl:  viper.GetString("wallet.signerUrl"),
	})
	coinGecko := coingecko.NewClient(&coingecko.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("coingecko.baseUrl"),
		CacheTtl:   viper.GetDuration("coingecko.cacheTtl"),
	})
	notifier, err := notify.NewDiscord(notify.DiscordCfg{
		DiscordBotKey:    viper.GetString("discord.botKey"),
		DiscordChannelId: viper.GetString("discord.channelId"),
		ExplorerUrl:      viper.GetString("discord.explorerUrl"),
	})
	if err != nil {
		context.WithField("err", err).Panic("notify.NewDiscord failed")
	}

	chainId := domain.ChainId(viper.GetString("chain.chainId"))
	denom := viper.GetString("chain.denom")

	chainStatus := chain_usecase.NewStatusUseCase(&chain_usecase.StatusUseCaseCfg{
		ChainId: chainId,
		Indexer: indexerClient,
		Node:    nodeClient,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.heightTtl"),
			Pfx:   cachePfx,
			Cache: cacheLayers,
		}),
	})
	tokenRepo := token_repository.NewTokenRepo(indexerClient, cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.tokenTtl"),
		Pfx:   cachePfx,
		Cache: cacheLayers,
	}))
	listingRepo := listing_repository.NewListingRepo(&listing_repository.ListingRepoCfg{
		Indexer: indexerClient,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.listingTtl"),
			Pfx:   cachePfx,
			Cache: cacheLayers,
		}),
		PageCache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("cache.listingPageTtl"),
			Pfx:   cachePfx,
			Cache: cacheLayers,
		}),
	})
	purchaseRepo := purchase_repository.NewPurchaseRepo(q)

	builder := tx_usecase.NewBuilder(tx_usecase.BuilderCfg{
		ChainId:             chainId,
		UrnChainId:          viper.GetString("chain.urnChainId"),
		Denom:               denom,
		CarrierAmount:       viper.GetInt64("tx.carrierAmount"),
		ProtocolFeeReceiver: domain.Address(viper.GetString("tx.protocolFeeReceiver")),
		ProtocolFeeRate:     decimal.RequireFromString(viper.GetString("tx.protocolFeeRate")),
	})
	estimator := tx_usecase.NewFeeEstimator(tx_usecase.FeeEstimatorCfg{
		Denom:      denom,
		GasPrice:   decimal.RequireFromString(viper.GetString("tx.gasPrice")),
		BaseGas:    viper.GetUint64("tx.baseGas"),
		PerMsgGas:  viper.GetUint64("tx.perMsgGas"),
		PerByteGas: viper.GetUint64("tx.perByteGas"),
		MaxGas:     viper.GetUint64("tx.maxGas"),
	})
	waiter := tx_usecase.NewWaiter(&tx_usecase.WaiterCfg{
		Indexer:        indexerClient,
		Node:           nodeClient,
		ConfirmTimeout: viper.GetDuration("tx.confirmTimeout"),
		PollInterval:   viper.GetDuration("tx.pollInterval"),
		MaxInterval:    viper.GetDuration("tx.maxPollInterval"),
	})
	submitter := tx_usecase.NewSubmitter(&tx_usecase.SubmitterCfg{
		Wallet:    walletProvider,
		Estimator: estimator,
		Waiter:    waiter,
		Lcd:       lcdClient,
		Denom:     denom,
	})

	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:          listingRepo,
		TokenRepo:     tokenRepo,
		Chain:         chainStatus,
		Wallet:        walletProvider,
		Builder:       builder,
		Submitter:     submitter,
		Prices:        coinGecko,
		CoinId:        viper.GetString("chain.coinId"),
		DenomExponent: viper.GetInt32("chain.denomExponent"),
	})
	purchase := purchase_usecase.New(&purchase_usecase.OrchestratorCfg{
		Repo:       purchaseRepo,
		Listings:   listingRepo,
		Chain:      chainStatus,
		Wallet:     walletProvider,
		Builder:    builder,
		Submitter:  submitter,
		Notifier:   notifier,
		StaleAfter: viper.GetDuration("tx.staleAfter"),
	})
	inscription := inscription_usecase.New(&inscription_usecase.InscriptionUseCaseCfg{
		Wallet:          walletProvider,
		Builder:         builder,
		Submitter:       submitter,
		MaxContentBytes: viper.GetInt("inscription.maxContentBytes"),
	})

	hcRepo := hc_repo.New(mongoClient, redisCache)
	hc := hc_usecase.New(hcRepo, chainStatus, viper.GetInt64("healthcheck.maxIndexerLag"))

	hc_delivery.New(e, hc)
	token_delivery.New(e, tokenRepo)
	listing_delivery.New(e, listing)
	purchase_delivery.New(e, purchase)
	inscription_delivery.New(e, inscription)
	coin_delivery.New(e, coinGecko, viper.GetStringSlice("coingecko.coinIds"))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	subCtx, stopSub := ctx.WithCancel(context)
	subscriber := listing_pubsub.New(redisCache, listingRepo)
	subDone := goroutine.RecoverableGo(func() {
		subscriber.Run(subCtx)
	})
	context.WithField("channel", keys.RedisKey(keys.ChannelListings, "*")).Info("listening for listing changes")

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	stopSub()
	<-subDone

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
