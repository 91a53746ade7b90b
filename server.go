//go:build !cli

package main

import (
	"fmt"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"glomnidesigns.GO/api"
	_ "glomnidesigns.GO/api/admin"
	_ "glomnidesigns.GO/api/categories"
	_ "glomnidesigns.GO/api/designs"
	_ "glomnidesigns.GO/api/graphql"
	_ "glomnidesigns.GO/api/health"
	_ "glomnidesigns.GO/api/interiors"
	_ "glomnidesigns.GO/api/portfolios"
	_ "glomnidesigns.GO/api/search"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/config"
	"glomnidesigns.GO/core/logging"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cfg := config.AppConfig

	log, err := logging.Init(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer logging.Sync()

	config.InitRedis()
	log.Info(config.PingRedis())

	a := app.Default()
	if a.Cache == nil {
		log.Info("envelope cache disabled (CACHE_TTL=0)")
	}
	if a.Index.Enabled() {
		log.Info("design search index enabled", zap.String("index", a.Index.IndexName()))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(api.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(api.RequestDuration())

	api.Apply(e, a)

	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d", "puffy"}
	figure.NewFigure("Glomni", fonts[rand.Intn(len(fonts))], true).Print()
	fmt.Println()

	log.Info("server running",
		zap.String("port", cfg.Port),
		zap.String("cms", a.Client.BaseURL()),
		zap.String("env", cfg.Env),
	)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
