package config

import "os"

type Config struct {
	MongoURI       string
	RedisAddr      string
	Port           string
	TokenSecret    string
	QuestionSource string // "static" or "mongo"
}

func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		Port:           getEnv("PORT", "8080"),
		TokenSecret:    getEnv("TOKEN_SECRET", "dev-secret-change-me"),
		QuestionSource: getEnv("QUESTION_SOURCE", "static"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
