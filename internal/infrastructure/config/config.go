package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort string
	GinMode    string

	// Data files
	DataDir       string
	PhotosDir     string
	PhrasesFile   string
	RegistryFile  string
	OfficersFile  string
	SchedulesFile string
	TimeLogsFile  string
	WatchDataDir  bool // 监听数据目录，外部修改时清理缓存

	// Photos
	MaxPhotoBytes int64

	// Logging
	LogDir   string
	LogLevel string

	// Redis (optional facet cache)
	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisDB       int
	RedisPassword string
	FacetCacheTTL time.Duration

	// Rate limiting
	RateLimitPerSecond float64
	RateLimitBurst     int
	// 照片上传接口按 IP+路径 单独限流
	UploadRateLimitPerSecond float64
	UploadRateLimitBurst     int
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	dataDir := getEnv(prefix+"DATA_DIR", getEnv("DATA_DIR", "data"))

	return &Config{
		EnvType: envType,

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),
		GinMode:    getEnv("GIN_MODE", "debug"),

		// Data files
		DataDir:       dataDir,
		PhotosDir:     getEnv(prefix+"PHOTOS_DIR", getEnv("PHOTOS_DIR", filepath.Join(dataDir, "officers_photos"))),
		PhrasesFile:   getEnv("PHRASES_FILE", "181_line__bank_Shoping_Center_en_es.json"),
		RegistryFile:  getEnv("REGISTRY_FILE", "site_registry.json"),
		OfficersFile:  getEnv("OFFICERS_FILE", "security_officers.json"),
		SchedulesFile: getEnv("SCHEDULES_FILE", "work_schedules.json"),
		TimeLogsFile:  getEnv("TIME_LOGS_FILE", "time_logs.json"),
		WatchDataDir:  getEnvAsBool("WATCH_DATA_DIR", true),

		MaxPhotoBytes: int64(getEnvAsInt("MAX_PHOTO_BYTES", 5<<20)),

		// Logging
		LogDir:   getEnv("LOG_DIR", "logs"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Redis config
		RedisEnabled:  getEnvAsBool(prefix+"REDIS_ENABLED", getEnvAsBool("REDIS_ENABLED", false)),
		RedisHost:     getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort:     getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisPassword: getEnv(prefix+"REDIS_PASSWORD", getEnv("REDIS_PASSWORD", "")),
		FacetCacheTTL: time.Duration(getEnvAsInt("FACET_CACHE_TTL_SECONDS", 300)) * time.Second,

		// Rate limiting
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 30),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 50),

		UploadRateLimitPerSecond: getEnvAsFloat("UPLOAD_RATE_LIMIT_PER_SECOND", 2),
		UploadRateLimitBurst:     getEnvAsInt("UPLOAD_RATE_LIMIT_BURST", 10),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// PhrasesPath returns the full path of the phrase bank
func (c *Config) PhrasesPath() string { return filepath.Join(c.DataDir, c.PhrasesFile) }

// RegistryPath returns the full path of the site registry
func (c *Config) RegistryPath() string { return filepath.Join(c.DataDir, c.RegistryFile) }

// OfficersPath returns the full path of the officer roster
func (c *Config) OfficersPath() string { return filepath.Join(c.DataDir, c.OfficersFile) }

// SchedulesPath returns the full path of the work schedules
func (c *Config) SchedulesPath() string { return filepath.Join(c.DataDir, c.SchedulesFile) }

// TimeLogsPath returns the full path of the time logs
func (c *Config) TimeLogsPath() string { return filepath.Join(c.DataDir, c.TimeLogsFile) }

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as float with default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
