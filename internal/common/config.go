package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Extract ExtractConfig
	Review  ReviewConfig
	Export  ExportConfig
}

// ExtractConfig holds extraction-engine configuration
type ExtractConfig struct {
	HeaderLines     int
	InternalKeyword string
	InternalSender  string
}

// ReviewConfig holds review-queue configuration
type ReviewConfig struct {
	MinConfidence float32
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			HeaderLines:     getEnvAsInt("EXTRACT_HEADER_LINES", 8),
			InternalKeyword: getEnv("EXTRACT_INTERNAL_KEYWORD", "bosowa"),
			InternalSender:  getEnv("EXTRACT_INTERNAL_SENDER", "BOSOWA (Internal)"),
		},
		Review: ReviewConfig{
			MinConfidence: getEnvAsFloat32("REVIEW_MIN_CONFIDENCE", 0.60),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Documents"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(parsed)
		}
	}
	return defaultValue
}
