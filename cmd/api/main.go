package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"staybook/internal/adapters/events"
	server "staybook/internal/adapters/http_server"
	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/adapters/sms"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	var smsSender domain.SMSSender
	if cfg.SMSKey != "" {
		smsSender, err = sms.New(cfg.SMSBase, cfg.SMSKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("sms client init failed")
		}
	} else {
		log.Warn().Msg("sms disabled; otp codes are only stored")
	}

	var publisher domain.EventPublisher
	if cfg.AmqpURL != "" {
		publisher = events.New(cfg.AmqpURL)
	} else {
		log.Warn().Msg("amqp disabled; booking events are not published")
	}

	tokens := app.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	users := app.NewUserService(repo, repo, smsSender, tokens, cfg.BcryptCost, cfg.OtpTTL)
	bookings := app.NewBookingService(repo, repo, publisher)
	reviews := app.NewReviewService(repo, repo, cache, cfg.CacheTTL)
	hotels := app.NewHotelQueryService(repo, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Users:     users,
		Bookings:  bookings,
		Reviews:   reviews,
		Hotels:    hotels,
		JWTSecret: cfg.JWTSecret,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
