package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultAPIBaseURL     = "http://127.0.0.1:8000/api/v1"
	defaultAppEnv         = "local"
	defaultHTTPTimeout    = "30s"
	defaultProfileDriver  = "file"
	defaultProfilePath    = "storage"
	defaultRedisAddr      = "localhost:6379"
	defaultStubListenAddr = "127.0.0.1:8000"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"API_BASE_URL":     defaultAPIBaseURL,
		"API_TOKEN":        "",
		"APP_ENV":          defaultAppEnv,
		"HTTP_TIMEOUT":     defaultHTTPTimeout,
		"PROFILE_DRIVER":   defaultProfileDriver,
		"PROFILE_PATH":     defaultProfilePath,
		"REDIS_ADDR":       defaultRedisAddr,
		"REDIS_PASSWORD":   "",
		"STUB_LISTEN_ADDR": defaultStubListenAddr,
	}
}

// APIBaseURL is the root of the backend REST API, without a trailing slash.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

// APIToken is the opaque bearer token forwarded on every request.
// Empty means no Authorization header is sent.
func APIToken() string {
	_ = Load()
	return get("API_TOKEN", "")
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// HTTPTimeout is the per-attempt timeout for outgoing API calls.
func HTTPTimeout() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("HTTP_TIMEOUT", defaultHTTPTimeout))
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultHTTPTimeout)
	}
	return d
}

// ProfileDriver selects the user-profile persistence driver: "file" or "redis".
func ProfileDriver() string {
	_ = Load()
	driver := strings.ToLower(get("PROFILE_DRIVER", defaultProfileDriver))
	switch driver {
	case "file", "redis":
		return driver
	default:
		return defaultProfileDriver
	}
}

// ProfilePath is the local directory the file profile driver writes under.
func ProfilePath() string {
	_ = Load()
	return get("PROFILE_PATH", defaultProfilePath)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// StubListenAddr is where `stockpilot demo` binds the built-in stub backend.
func StubListenAddr() string {
	_ = Load()
	return get("STUB_LISTEN_ADDR", defaultStubListenAddr)
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		var s string
		switch v := val.(type) {
		case string:
			s = v
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and config/app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
