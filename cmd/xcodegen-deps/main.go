package main

import (
	"github.com/joho/godotenv"

	"xcodegen-deps/internal/cli"
)

func main() {
	// A missing .env is fine; XCODEGEN_DEPS_* may come from the shell.
	_ = godotenv.Load(".env")

	cli.Execute()
}
