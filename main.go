package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/config"
	v1 "github.com/vchoerlle/zelofinanceiro-sub001/internal/controllers/v1"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/importer"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/mailer"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/recalc"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/router"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/storage"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Connect to the database
	if cfg.DBHost != "" {
		err = models.ConnectPostgres(cfg.PostgresDSN())
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		err = models.Connect(filepath.Join(cfg.DataDir, "gorm.db"))
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Recalculation engine with its event bus
	bus := recalc.NewBus()
	engine := recalc.NewEngine(bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine.Start(ctx)

	// Requests that were interrupted before their recalculation ran are
	// picked up again here
	err = engine.DrainPending()
	if err != nil {
		log.Error().Err(err).Msg("could not drain pending recalculations")
	}

	// Nightly sweep for overdue installments and maintenances
	sweep := sweeper.New(engine, cfg.SweepSchedule)
	err = sweep.Start()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer sweep.Stop()

	deps := v1.Dependencies{
		Engine:        engine,
		JWTSecret:     cfg.JWTSecret,
		TokenLifetime: time.Duration(cfg.TokenLifetime) * time.Hour,
		Sweep:         sweep.Sweep,
		Mailer: mailer.Mailer{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		},
	}

	// Statement parsing needs Gemini credentials in the environment
	if os.Getenv("GOOGLE_API_KEY") != "" || os.Getenv("GEMINI_API_KEY") != "" {
		deps.Parser = importer.GeminiParser{Model: cfg.GeminiModel}
	}

	if cfg.AvatarBucket != "" {
		deps.Uploader = storage.GCSUploader{Bucket: cfg.AvatarBucket}
	}

	v1.Configure(deps)

	r, err := router.Router(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
