package config

import (
	"os"
)

type Config struct {
	ProjectID            string
	FirebasePrivateKeyID string
	FirebasePrivateKey   string
	FirebaseClientEmail  string
	FirebaseClientID     string
	GHLAPIKey            string
	FrontendURL          string
	Port                 string
	LogLevel             string
}

func New() *Config {
	return &Config{
		ProjectID:            os.Getenv("PROJECTID"),
		FirebasePrivateKeyID: os.Getenv("FIREBASEPRIVATEKEYID"),
		FirebasePrivateKey:   os.Getenv("FIREBASEPRIVATEKEY"),
		FirebaseClientEmail:  os.Getenv("FIREBASECLIENTEMAIL"),
		FirebaseClientID:     os.Getenv("FIREBASECLIENTID"),
		GHLAPIKey:            os.Getenv("GHLAPIKEY"),
		FrontendURL:          os.Getenv("FRONTENDURL"),
		Port:                 getOrDefault("PORT", "8080"),
		LogLevel:             os.Getenv("LOGLEVEL"),
	}
}

// HasServiceAccount reports whether enough credential material was
// provided to build an explicit service account. When false the SDKs
// fall back to application default credentials.
func (c *Config) HasServiceAccount() bool {
	return c.FirebasePrivateKey != "" && c.FirebaseClientEmail != ""
}

func getOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
