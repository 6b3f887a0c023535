package main

import (
	"github.com/joho/godotenv"

	"github.com/eduquery/eduquery-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; environment variables win either way.
	godotenv.Load()
}
