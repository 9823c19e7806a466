package app

import (
	"fmt"
	"strconv"

	"github.com/gustedit/gust/internal/config"
)

// ApplySetting applies one key/value pair from the init script onto the
// configuration, using the same keys as the config file.
func ApplySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "theme":
		cfg.Theme = value
	case "log_level":
		cfg.LogLevel = value
	case "autosave_sec":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("autosave_sec wants a non-negative integer, got %q", value)
		}
		cfg.AutosaveSec = n
	case "history_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("history_size wants a positive integer, got %q", value)
		}
		cfg.HistorySize = n
	case "backup":
		return applyBool(&cfg.Backup, key, value)
	case "number":
		return applyBool(&cfg.Number, key, value)
	case "wrap":
		return applyBool(&cfg.Wrap, key, value)
	case "truncate":
		return applyBool(&cfg.Truncate, key, value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func applyBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s wants a boolean, got %q", key, value)
	}
	*dst = b
	return nil
}
