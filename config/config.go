package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var (
	JwtSecret      string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	ServerPort     string
	Issuer         string
	AllowedOrigins []string
)

// fileConfig mirrors the optional YAML override file. Every field is
// optional; anything left empty keeps the env/default value.
type fileConfig struct {
	JwtSecret      string   `yaml:"jwt_secret"`
	DbHost         string   `yaml:"db_host"`
	DbPort         string   `yaml:"db_port"`
	DbUser         string   `yaml:"db_user"`
	DbPassword     string   `yaml:"db_password"`
	DbName         string   `yaml:"db_name"`
	ServerPort     string   `yaml:"server_port"`
	Issuer         string   `yaml:"issuer"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "devshare")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "devshare")
	AllowedOrigins = nil

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		applyFileOverrides(path)
	}
}

func applyFileOverrides(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Config file %s not readable, skipping: %v", path, err)
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Printf("Config file %s invalid, skipping: %v", path, err)
		return
	}

	if fc.JwtSecret != "" {
		JwtSecret = fc.JwtSecret
	}
	if fc.DbHost != "" {
		DbHost = fc.DbHost
	}
	if fc.DbPort != "" {
		DbPort = fc.DbPort
	}
	if fc.DbUser != "" {
		DbUser = fc.DbUser
	}
	if fc.DbPassword != "" {
		DbPassword = fc.DbPassword
	}
	if fc.DbName != "" {
		DbName = fc.DbName
	}
	if fc.ServerPort != "" {
		ServerPort = fc.ServerPort
	}
	if fc.Issuer != "" {
		Issuer = fc.Issuer
	}
	if len(fc.AllowedOrigins) > 0 {
		AllowedOrigins = fc.AllowedOrigins
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
