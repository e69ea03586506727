package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/board"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/config"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/events"
	apphttp "github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/http"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/store"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/telemetry"
)

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newMongoClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*mongod.Client, error) {
	client, err := mongod.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})
	return client, nil
}

func newStore(client *mongod.Client, cfg *config.Config, logger *zap.Logger) store.Store {
	return store.NewMongoStore(client, cfg.MongoDatabase, logger)
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (events.Publisher, error) {
	publisher, err := events.NewPublisher(cfg.NATSURL, cfg.NATSConnTimeout, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			publisher.Close()
			return nil
		},
	})
	return publisher, nil
}

func newRouter(jobs *apphttp.JobHandler, logger *zap.Logger) *gin.Engine {
	return apphttp.NewRouter(jobs, logger)
}

func registerTracing(lc fx.Lifecycle, cfg *config.Config) error {
	shutdown, err := telemetry.InitTracer(context.Background(), "jobboard-api", cfg.OTELCollectorURL)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			shutdown()
			return nil
		},
	})
	return nil
}

func registerServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("API server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					logger.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newMongoClient,
			newStore,
			newPublisher,
			board.NewService,
			apphttp.NewJobHandler,
			newRouter,
		),
		fx.Invoke(
			registerTracing,
			registerServer,
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
