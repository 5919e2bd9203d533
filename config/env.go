// config/env.go
package config

import "os"

// Environment names recognized in APP_ENV. Anything else is treated as dev.
const (
	EnvProduction = "production"
	EnvTest       = "test"
	EnvDev        = "dev"
)

// Env returns the normalized runtime environment.
func Env() string {
	switch os.Getenv("APP_ENV") {
	case EnvProduction:
		return EnvProduction
	case EnvTest:
		return EnvTest
	default:
		return EnvDev
	}
}

// BlobKeyPrefix returns the environment tag prepended to every generated
// blob key so dev and test uploads never collide with production objects.
// The prefix is deterministic from the environment alone.
func BlobKeyPrefix(env string) string {
	switch env {
	case EnvProduction:
		return ""
	case EnvTest:
		return "test/"
	default:
		return "dev/"
	}
}

// BucketName returns the storage bucket for the environment.
func BucketName(env string) string {
	switch env {
	case EnvProduction:
		return "edie-styles-virtual-closet"
	case EnvTest:
		return "edie-styles-virtual-closet-test"
	default:
		return "edie-styles-virtual-closet-dev"
	}
}
