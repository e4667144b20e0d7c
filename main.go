package main

import (
	"fmt"
	"os"

	"RPGLobby/cmd"
)

// @title RPG Lobby API
// @version 1.0
// @description Gin-Gonic server for tabletop RPG lobbies, invites and character sheets
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
