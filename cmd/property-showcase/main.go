package main

import (
	"log"
	"os"

	"property-showcase/internal"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	envPath := flags.String("env", "", "path to .env file (default: ./.env if present)")
	_ = flags.Parse(os.Args[1:])

	application, err := internal.NewApp(*envPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application run failed: %v", err)
	}
}
