package main

import (
	"fmt"
	"os"

	"game-admin/internal/app"
)

// @title Game Admin API
// @version 1.0
// @description Signed RPC API for game administration: admin users, roles, app configuration, player mail and leaderboards.
// @BasePath /
func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "game-admin: %v\n", err)
		os.Exit(1)
	}
}
