package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port       string
	DBDSN      string
	LogFile    string
	BcryptCost int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shopcore.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	cost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 4 && n <= 31 {
			cost = n
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, BcryptCost: cost}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s BCRYPT_COST=%d", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.BcryptCost)
	return cfg
}
