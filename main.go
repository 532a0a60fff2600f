package main

import (
	"github.com/backwind1233/taskguard/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// Carrega .env se existir
	_ = godotenv.Load()

	cmd.Execute()
}
