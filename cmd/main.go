package main

import (
	"github.com/KeyongL/lipid-guard/config"
	"github.com/KeyongL/lipid-guard/routes"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg)
	config.InitDB(cfg)

	r := routes.SetupRouter(cfg)
	config.Log.Infof("Server is running on port %s (env: %s)", cfg.Port, cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		config.Log.Fatalf("failed to start server: %v", err)
	}
}
