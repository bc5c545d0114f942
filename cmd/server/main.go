package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server"
	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/config"
)

func main() {

	_ = godotenv.Load(".env.local")

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
