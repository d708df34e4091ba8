//go:build !windows && !linux && !darwin
// +build !windows,!linux,!darwin

package config

// GetPlatformDefaultConfig gets the defaults for the platform
func GetPlatformDefaultConfig() OSConfig {
	return OSConfig{
		OpenCommand: "open {{filename}}",
	}
}
