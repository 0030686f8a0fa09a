package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken string
	DatabaseURL   string
	HTTPAddr      string
	AppURL        string
	SeedDemoData  bool
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{}

		// .env не обязателен: в проде переменные приходят из окружения
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
		if instance.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}

		instance.DatabaseURL = getEnv("DATABASE_URL", "vacaybot.db")
		instance.HTTPAddr = getEnv("HTTP_ADDR", ":3000")
		instance.AppURL = getEnv("APP_URL", "http://localhost:3000")
		instance.SeedDemoData = getEnvAsBool("SEED_DEMO_DATA", true)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}
