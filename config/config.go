package config

import "os"

type Config struct {
	MongoURI    string
	DBName      string
	Port        string
	FrontendURL string
	SecretKey   string
	UploadDir   string
	FrontendDir string
}

func Load() *Config {
	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "bluetech"),
		Port:        getEnv("PORT", "5000"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		FrontendDir: getEnv("FRONTEND_DIR", "../frontend"),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
