package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Application configuration
	AppPort string `yaml:"APP_PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Dashboard content directories
	MapsDir string `yaml:"MAPS_DIR"`
	DataDir string `yaml:"DATA_DIR"`

	// Activity log configuration
	LogLimit string `yaml:"LOG_LIMIT"`

	// Mailing configuration
	SMTPHost          string `yaml:"SMTP_HOST"`
	SMTPPort          string `yaml:"SMTP_PORT"`
	SMTPSenderName    string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail     string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword  string `yaml:"SMTP_AUTH_PASSWORD"`
	SupplyNotifyEmail string `yaml:"SUPPLY_NOTIFY_EMAIL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "MAPS_DIR":
		return config.MapsDir
	case "DATA_DIR":
		return config.DataDir
	case "LOG_LIMIT":
		return config.LogLimit
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "SUPPLY_NOTIFY_EMAIL":
		return config.SupplyNotifyEmail
	default:
		return ""
	}
}
