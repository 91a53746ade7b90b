package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultAPIURL is used when neither NEXT_PUBLIC_API_URL nor CMS_API_URL is set.
const DefaultAPIURL = "http://localhost:1337/api"

// DefaultRequestTimeout bounds every CMS request.
const DefaultRequestTimeout = 10 * time.Second

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName        string
	Port           string
	Env            string
	Debug          bool
	APIURL         string
	AssetOrigin    string
	RequestTimeout time.Duration
	CacheTTL       int64 // seconds; 0 disables envelope caching
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = FromEnv()
	})
}

// FromEnv builds a Config from the current environment without touching AppConfig.
func FromEnv() *Config {
	apiURL := GetEnv("NEXT_PUBLIC_API_URL", GetEnv("CMS_API_URL", DefaultAPIURL))
	return &Config{
		AppName:        GetEnv("APP_NAME", "glomnidesigns"),
		Port:           GetEnv("PORT", "8080"),
		Env:            os.Getenv("APP_ENV"),
		Debug:          os.Getenv("DEBUG") == "true",
		APIURL:         strings.TrimRight(apiURL, "/"),
		AssetOrigin:    AssetOriginFor(apiURL),
		RequestTimeout: parseDuration(os.Getenv("CMS_TIMEOUT"), DefaultRequestTimeout),
		CacheTTL:       parseInt(os.Getenv("CACHE_TTL"), 0),
	}
}

// AssetOriginFor strips the trailing /api segment from a CMS API URL.
// Upload paths returned by the CMS are relative to this origin.
func AssetOriginFor(apiURL string) string {
	u := strings.TrimRight(apiURL, "/")
	return strings.TrimSuffix(u, "/api")
}

// parseDuration accepts Go durations ("15s") or a bare number of seconds.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func parseInt(s string, def int64) int64 {
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return def
	}
	return n
}
