package main

import (
	"antenna_ops/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
