package config

import "time"

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultTokenIssuer      = "mentor-mentee-app"
	defaultTokenAudience    = "mentor-mentee-users"
	defaultPasswordHashCost = 10
	defaultImagesDir        = "uploads"
	defaultMaxImageSize     = 5 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenAudience:    defaultTokenAudience,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Storage: Storage{
			Files: Files{
				ImagesDir:    defaultImagesDir,
				MaxImageSize: defaultMaxImageSize,
			},
		},
	}
}
