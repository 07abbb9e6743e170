package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/puisi/internal/buildinfo"
	"github.com/dmitrijs2005/puisi/internal/server"
	"github.com/dmitrijs2005/puisi/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig(config.ServiceReaction)
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
