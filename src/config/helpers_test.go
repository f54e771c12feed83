package config

import (
	"github.com/apimgr/employee-tracker/src/database"
	"github.com/apimgr/employee-tracker/src/logging"
)

func databaseConfig(driver, name string) database.Config {
	cfg := database.DefaultConfig()
	cfg.Driver = driver
	cfg.Name = name
	return *cfg
}

func loggingConfig(level string) logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = level
	return cfg
}
