package main

import (
	"gudangku-be/cmd/gudangku/commands"
	"gudangku-be/internal/logger"
)

func main() {
	defer logger.Sync()
	commands.Execute()
}
