// internal/pipeline/filter-catalog/config.go
package filtercatalog

// No tunables today; struct kept for consistency with the other stages.
type Config struct{}

func LoadConfig() *Config {
	return &Config{}
}
