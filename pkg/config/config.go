package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from a .env file and environment variables.
// prefix: environment variable prefix (e.g. "CARDBASE_")
// target: pointer to the config struct to load into
//
// Values already set on target act as defaults; environment variables
// matching the prefix override them.
func Load(prefix string, target interface{}) error {
	v := viper.New()

	// .env file is optional
	v.SetConfigFile(".env")
	_ = v.ReadInConfig()

	// Viper's AutomaticEnv does not cooperate with Unmarshal when the key
	// set is unknown, so env vars are mapped onto viper keys explicitly:
	// CARDBASE_LOG_LEVEL -> log.level
	prefixUpper := strings.ToUpper(prefix)
	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		key, value := pair[0], pair[1]

		if strings.HasPrefix(key, prefixUpper) {
			propKey := strings.TrimPrefix(key, prefixUpper)
			propKey = strings.ToLower(strings.ReplaceAll(propKey, "_", "."))
			propKey = strings.TrimPrefix(propKey, ".")

			v.Set(propKey, value)
		}
	}

	if err := v.Unmarshal(target); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}
