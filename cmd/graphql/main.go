// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"glomnidesigns.GO/api"
	_ "glomnidesigns.GO/api/graphql"
	_ "glomnidesigns.GO/api/health"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/config"
	"glomnidesigns.GO/core/logging"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	log, err := logging.Init(config.AppConfig.Debug)
	if err != nil {
		panic(err)
	}
	defer logging.Sync()

	config.InitRedis()
	log.Info(config.PingRedis())

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(api.RequestDuration())
	api.ApplyRoutes(e, app.Default())

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("Glomni GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := config.AppConfig.Port
	log.Info("graphql ready",
		zap.String("graphql", "http://localhost:"+port+"/graphql"),
		zap.String("playground", "http://localhost:"+port+"/playground"),
	)
	if err := e.Start(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
