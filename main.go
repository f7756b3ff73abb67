package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"lmercier/finpipe/cmd/classify"
	"lmercier/finpipe/cmd/process"
	"lmercier/finpipe/cmd/root"
	"lmercier/finpipe/cmd/rules"
)

func init() {
	// Load environment variables before anything reads configuration.
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// loadEnvSilently loads a .env file from the working directory or the
// project root without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Exit(err)
	}
}
