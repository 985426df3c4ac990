package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/jaydenyuan326/todo-list-manager/internal/cli"
)

func main() {
	// A .env next to the binary can seed TODO_DIR, TODO_FORMAT and
	// friends; missing files are fine.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
