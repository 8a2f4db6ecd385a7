package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/localinfo-service/config"
	"ulascansenturk/localinfo-service/internal/api/v1/handlers"
	"ulascansenturk/localinfo-service/internal/db/lookuplog"
	"ulascansenturk/localinfo-service/internal/localinfo"
	"ulascansenturk/localinfo-service/internal/providers"
	"ulascansenturk/localinfo-service/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var lookupRepo lookuplog.Repository
	if conf.LookupLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		lookupRepo = lookuplog.NewRepository(db)
	} else {
		log.Warn().Msg("DATABASE_HOST not set, lookup log disabled")
	}

	providerConfig := providers.Config{
		GeocodeBaseURL:   conf.GeocodeBaseURL,
		GridPointBaseURL: conf.GridPointBaseURL,
		ClientIdentifier: conf.ClientIdentifier,
	}
	httpClient := providers.NewHTTPClient(conf.ProviderTimeout)

	pipeline := service.NewWeatherPipeline(
		providers.NewGeocoder(providerConfig, httpClient),
		providers.NewForecastLocator(providerConfig, httpClient),
		providers.NewConditionsFetcher(providerConfig, httpClient),
		lookupRepo,
	)

	views := localinfo.NewService(pipeline, clockwork.NewRealClock())

	handler := handlers.NewLocalInfoHandler(views, conf.HTTPTimeoutDuration())

	// No WriteTimeout: event streams stay open until the client leaves or the
	// server shuts down.
	requestCtx, stopRequests := context.WithCancel(ctx)
	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
		BaseContext:       func(net.Listener) context.Context { return requestCtx },
	}
	httpServer.RegisterOnShutdown(stopRequests)

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		shutdownErr := httpServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.Lookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
