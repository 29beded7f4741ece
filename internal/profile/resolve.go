package profile

import (
	"os"

	"github.com/matheus3301/wave/internal/config"
)

const (
	DefaultName = "main"
	// EnvName selects the profile when no --profile flag is given.
	EnvName = "WAVE_PROFILE"
)

// Resolve picks the active profile: the flag, then $WAVE_PROFILE, then
// default_profile from config.toml, then DefaultName.
func Resolve(flagOverride string) string {
	for _, candidate := range []func() string{
		func() string { return flagOverride },
		func() string { return os.Getenv(EnvName) },
		configuredDefault,
	} {
		if name := candidate(); name != "" {
			return name
		}
	}
	return DefaultName
}

func configuredDefault() string {
	cfg, err := config.Load(ConfigPath())
	if err != nil {
		return ""
	}
	return cfg.DefaultProfile
}
