// Package main runs the bridge daemon: the bridge state machine behind an HTTP API,
// a gRPC health endpoint, the source-chain relayer and the audit exporter.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/audit"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/bridge/model"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/metrics"
	btcrpc "github.com/goodnatureofminers/blockinsight7000-bridge/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/records"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/relayer"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/snapshot"
	"github.com/goodnatureofminers/blockinsight7000-bridge/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-bridge/pkg/batcher"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
)

type config struct {
	Network          string        `long:"network" env:"BRIDGE_NETWORK" default:"mainnet" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet" description:"source chain network"`
	Owner            string        `long:"owner" env:"BRIDGE_OWNER" required:"true" description:"principal that owns the bridge policy"`
	Operators        []string      `long:"operator" env:"BRIDGE_OPERATORS" env-delim:"," description:"operator principal (repeatable)"`
	MinConfirmations uint32        `long:"min-confirmations" env:"BRIDGE_MIN_CONFIRMATIONS" default:"6" description:"confirmations required to finalize a claim"`
	MaxConfirmations uint32        `long:"max-confirmations" env:"BRIDGE_MAX_CONFIRMATIONS" default:"144" description:"upper bound for min confirmations"`
	MinDepositSat    int64         `long:"min-deposit-sat" env:"BRIDGE_MIN_DEPOSIT_SAT" default:"10000" description:"smallest deposit amount in satoshi"`
	LogRetention     int           `long:"log-retention" env:"BRIDGE_LOG_RETENTION" default:"10000" description:"operation log entries kept in memory"`
	HTTPAddr         string        `long:"http-addr" env:"BRIDGE_HTTP_ADDR" default:":8080" description:"HTTP API listen address"`
	GRPCAddr         string        `long:"grpc-addr" env:"BRIDGE_GRPC_ADDR" default:":9090" description:"gRPC health listen address"`
	MetricsAddr      string        `long:"metrics-addr" env:"BRIDGE_METRICS_ADDR" description:"separate metrics listen address; metrics are also served by the HTTP API"`
	CORSOrigins      []string      `long:"cors-origin" env:"BRIDGE_CORS_ORIGINS" env-delim:"," description:"allowed CORS origin (repeatable); all origins when empty"`
	SnapshotPath     string        `long:"snapshot-path" env:"BRIDGE_SNAPSHOT_PATH" description:"state snapshot file; state is not persisted when empty"`
	SnapshotInterval time.Duration `long:"snapshot-interval" env:"BRIDGE_SNAPSHOT_INTERVAL" default:"1m" description:"how often state is written"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"BRIDGE_CLICKHOUSE_DSN" description:"ClickHouse DSN for the operation log export"`
	AuditFlushSize   int           `long:"audit-flush-size" env:"BRIDGE_AUDIT_FLUSH_SIZE" default:"500" description:"operation log entries per export batch"`
	AuditFlushEvery  time.Duration `long:"audit-flush-interval" env:"BRIDGE_AUDIT_FLUSH_INTERVAL" default:"2s" description:"maximum delay before a partial batch is exported"`
	RedisURL         string        `long:"redis-url" env:"BRIDGE_REDIS_URL" description:"Redis URL for indexed records; records stay in memory when empty"`
	RPCURL           string        `long:"rpc-url" env:"BRIDGE_RPC_URL" description:"bitcoind RPC URL; the relayer is disabled when empty"`
	RPCUser          string        `long:"rpc-user" env:"BRIDGE_RPC_USER" description:"bitcoind RPC username"`
	RPCPassword      string        `long:"rpc-password" env:"BRIDGE_RPC_PASSWORD" description:"bitcoind RPC password"`
	ZMQAddr          string        `long:"zmq-addr" env:"BRIDGE_ZMQ_ADDR" description:"bitcoind zmqpubhashblock address (zmq builds only)"`
	RelayerStart     uint64        `long:"relayer-start-height" env:"BRIDGE_RELAYER_START_HEIGHT" description:"first height synced into an empty bridge; 0 starts at the tip"`
	RelayerInterval  time.Duration `long:"relayer-interval" env:"BRIDGE_RELAYER_INTERVAL" default:"10s" description:"delay between relayer cycles"`
	RelayerPrincipal string        `long:"relayer-principal" env:"BRIDGE_RELAYER_PRINCIPAL" default:"relayer" description:"operator principal the relayer acts as"`
	RelayerWorkers   int           `long:"relayer-workers" env:"BRIDGE_RELAYER_WORKERS" default:"8" description:"concurrent header fetches"`
	RejectMissing    bool          `long:"relayer-reject-missing" env:"BRIDGE_RELAYER_REJECT_MISSING" description:"reject claims whose transaction is not in the claimed block"`
}

// recordStore is what both record backends provide.
type recordStore interface {
	bridge.Indexer
	transport.RecordReader
}

func main() {
	_ = godotenv.Load()

	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("bridge daemon failed", zap.Error(err))
	}
	logger.Info("bridge daemon stopped")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	logger = logger.With(zap.String("network", cfg.Network))

	store, closeStore, err := newRecordStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	hs := health.NewServer()
	updater := transport.NewHealthUpdater(hs, false, logger)
	sinks := bridge.MultiSink{updater}

	var (
		history  transport.History
		exporter *audit.Exporter
	)
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, network, metrics.NewClickhouseRepository(network))
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close repository", zap.Error(err))
			}
		}()
		exporter, err = audit.NewExporter(repo, metrics.NewAudit(network), logger, audit.Config{
			Batch: batcher.Config{FlushSize: cfg.AuditFlushSize, FlushInterval: cfg.AuditFlushEvery},
		})
		if err != nil {
			return fmt.Errorf("init audit exporter: %w", err)
		}
		history = repo
		sinks = append(sinks, exporter)
	}

	b, err := bridge.New(bridge.Config{
		Network:      network,
		Policy:       initialPolicy(cfg),
		Indexer:      store,
		Audit:        sinks,
		Metrics:      metrics.NewBridge(network),
		Logger:       logger,
		LogRetention: cfg.LogRetention,
	})
	if err != nil {
		return fmt.Errorf("init bridge: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.SnapshotPath != "" {
		keeper, err := snapshot.NewKeeper(cfg.SnapshotPath, cfg.SnapshotInterval, b, logger)
		if err != nil {
			return fmt.Errorf("init snapshot keeper: %w", err)
		}
		if _, err := keeper.Restore(); err != nil {
			return err
		}
		g.Go(func() error {
			return ignoreCanceled(keeper.Run(gctx))
		})
	}
	updater.Sync(b.Paused())

	if exporter != nil {
		if err := exporter.Start(ctx, b); err != nil {
			return fmt.Errorf("start audit exporter: %w", err)
		}
		defer exporter.Stop()
	}

	if cfg.RPCURL != "" {
		if err := startRelayer(gctx, g, cfg, b, logger); err != nil {
			return err
		}
	}

	api, err := transport.NewServer(transport.Config{
		Bridge:         b,
		Records:        store,
		History:        history,
		Metrics:        metrics.NewHTTP(),
		Logger:         logger,
		AllowedOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return fmt.Errorf("init http api: %w", err)
	}
	g.Go(func() error {
		return serveHTTP(gctx, cfg.HTTPAddr, api, logger)
	})
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		g.Go(func() error {
			return serveHTTP(gctx, cfg.MetricsAddr, mux, logger)
		})
	}
	g.Go(func() error {
		return serveGRPC(gctx, cfg.GRPCAddr, hs, logger)
	})

	return ignoreCanceled(g.Wait())
}

func initialPolicy(cfg config) model.Policy {
	policy := model.DefaultPolicy(model.Principal(cfg.Owner))
	policy.MinConfirmations = cfg.MinConfirmations
	policy.MaxConfirmations = cfg.MaxConfirmations
	policy.MinDepositAmount = btcutil.Amount(cfg.MinDepositSat)
	for _, op := range cfg.Operators {
		policy.Operators = policy.WithOperator(model.Principal(op), true)
	}
	if cfg.RPCURL != "" {
		policy.Operators = policy.WithOperator(model.Principal(cfg.RelayerPrincipal), true)
	}
	return policy
}

func newRecordStore(ctx context.Context, cfg config, logger *zap.Logger) (recordStore, func(), error) {
	if cfg.RedisURL == "" {
		return records.NewMemory(), func() {}, nil
	}
	r, err := records.NewRedis(ctx, cfg.RedisURL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis records: %w", err)
	}
	return r, func() {
		if err := r.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}, nil
}

func startRelayer(ctx context.Context, g *errgroup.Group, cfg config, b *bridge.Bridge, logger *zap.Logger) error {
	network := b.Network()
	client, err := btcrpc.Dial(btcrpc.Config{URL: cfg.RPCURL, User: cfg.RPCUser, Password: cfg.RPCPassword})
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	source := relayer.NewBitcoinSource(btcrpc.NewObservedClient(client, metrics.NewRPCClient(network)))

	blocks, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		client.Shutdown()
		return err
	}

	principal := model.Principal(cfg.RelayerPrincipal)
	if !b.Policy().IsOperator(principal) {
		logger.Warn("relayer principal is not an operator; claims will not be finalized",
			zap.String("principal", cfg.RelayerPrincipal))
	}
	rel, err := relayer.New(b, source, metrics.NewRelayer(network), logger, relayer.Config{
		Principal:     principal,
		StartHeight:   cfg.RelayerStart,
		Interval:      cfg.RelayerInterval,
		Workers:       cfg.RelayerWorkers,
		RejectMissing: cfg.RejectMissing,
		BlockSignal:   blocks,
	})
	if err != nil {
		client.Shutdown()
		return fmt.Errorf("init relayer: %w", err)
	}

	g.Go(func() error {
		defer func() {
			client.Shutdown()
			client.WaitForShutdown()
		}()
		return ignoreCanceled(rel.Run(ctx))
	})
	return nil
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.String("addr", addr), zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server %s: %w", addr, err)
	}
	return nil
}

func serveGRPC(ctx context.Context, addr string, hs *health.Server, logger *zap.Logger) error {
	srv := transport.NewGRPCServer(logger, hs)
	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", addr, err)
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down grpc server")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	logger.Info("starting grpc server", zap.String("addr", addr))
	if err := srv.Serve(socket); err != nil {
		return fmt.Errorf("grpc server %s: %w", addr, err)
	}
	return nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
