package main

import (
	"os"

	"lancontrol/internal/launcher"
	"lancontrol/server"
)

func main() {
	os.Exit(launcher.Main(nil, os.Stderr, func() launcher.Server {
		return server.CreateApp()
	}))
}
