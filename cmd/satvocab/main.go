package main

import (
	"context"
	"log"

	"github.com/fun2learn/satvocab/internal/cli"
	"github.com/fun2learn/satvocab/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
