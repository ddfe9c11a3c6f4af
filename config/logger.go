package config

import "go.uber.org/zap"

// Log is usable before InitLogger runs so tests and seed tooling
// don't have to bootstrap the full config.
var Log = zap.Must(zap.NewDevelopment()).Sugar()

func InitLogger(cfg *Config) {
	var l *zap.Logger
	if cfg.IsProduction() {
		l = zap.Must(zap.NewProduction())
	} else {
		l = zap.Must(zap.NewDevelopment())
	}
	Log = l.Sugar()
}
