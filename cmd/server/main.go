package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Bhumika158/SignSegmentationUI/internal/config"
	"github.com/Bhumika158/SignSegmentationUI/internal/handler"
	"github.com/Bhumika158/SignSegmentationUI/internal/middleware"
	"github.com/Bhumika158/SignSegmentationUI/internal/router"
	"github.com/Bhumika158/SignSegmentationUI/internal/service"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "segval-api")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}
	defer st.Close()

	// Metrics pool gauges only apply to the networked backend.
	if ps, ok := st.(*store.PostgresStore); ok {
		handler.InitMetrics(ps.Pool())
	} else {
		handler.InitMetrics(nil)
	}

	svc := service.NewValidationService(st)

	h := &router.Handlers{
		Validation: handler.NewValidationHandler(svc),
		Health:     handler.NewHealthHandler(st),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Sign Segmentation Validator API",
		ServerHeader: "segval",
	})

	router.Setup(app, h, cfg.CORSOrigins)

	videoSource := "local"
	if cfg.UseCloudVideos {
		videoSource = "cloud"
	}
	log.Printf("validator backend starting on :%s (env=%s, backend=%s)", cfg.Port, cfg.Environment, st.Name())
	log.Printf("video assets served externally from %s base path %q", videoSource, cfg.VideoBasePath)
	log.Fatal(app.Listen(":" + cfg.Port))
}
