package pomod

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// DatabasePath enables the optional session history when set.
	DatabasePath string
	// ThemePath points at a TOML file overriding the status-line icons.
	ThemePath string
	// SoundCommand is the argv of the command run on each state change.
	SoundCommand []string
}

func LoadConfig() (Config, error) {
	isProd := flag.Bool("p", false, "is production environment")
	if !flag.Parsed() {
		flag.Parse()
	}
	if *isProd {
		_ = godotenv.Load(".env")
	} else {
		_ = godotenv.Load(".env.dev")
	}

	config := Config{
		DatabasePath: os.Getenv("POMOD_DB_PATH"),
		ThemePath:    os.Getenv("POMOD_THEME_PATH"),
		SoundCommand: strings.Fields(os.Getenv("POMOD_SOUND_CMD")),
	}

	if config.DatabasePath != "" {
		if info, err := os.Stat(config.DatabasePath); err == nil && info.IsDir() {
			return Config{}, fmt.Errorf("POMOD_DB_PATH is a directory: %s", config.DatabasePath)
		}
	}

	return config, nil
}
