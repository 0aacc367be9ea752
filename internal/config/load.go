package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load builds the run configuration, applying overrides from an
// optional winsweep.yaml and WINSWEEP_* environment variables. When
// explicit is non-empty that file must exist and parse; otherwise the
// config file is searched for under %LOCALAPPDATA%\winsweep and the
// working directory, and its absence is not an error.
func Load(explicit string) (Config, error) {
	v := viper.New()
	v.SetDefault("temp_age_days", DefaultTempAgeDays)
	v.SetDefault("system_age_days", DefaultSystemAgeDays)
	v.SetDefault("log.dir", DefaultLogDir())
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)

	v.SetEnvPrefix("WINSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", explicit, err)
		}
	} else {
		v.SetConfigName("winsweep")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(localAppData(), "winsweep"))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	tempAge := v.GetInt("temp_age_days")
	systemAge := v.GetInt("system_age_days")
	if tempAge < 1 {
		return Config{}, fmt.Errorf("temp_age_days must be at least 1, got %d", tempAge)
	}
	if systemAge < tempAge {
		return Config{}, fmt.Errorf("system_age_days (%d) must not be lower than temp_age_days (%d)",
			systemAge, tempAge)
	}

	return Config{
		Groups:      DefaultGroups(tempAge, systemAge),
		NeverDelete: NeverDeletePaths(),
		Log: LogSettings{
			Dir:        v.GetString("log.dir"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
		},
	}, nil
}
