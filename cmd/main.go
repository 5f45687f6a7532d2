package main

import (
	"os"

	"pub-trivia-service/internal/cli"
	"pub-trivia-service/internal/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
