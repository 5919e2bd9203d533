// config/env_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	tests := []struct {
		appEnv string
		want   string
	}{
		{"production", EnvProduction},
		{"test", EnvTest},
		{"dev", EnvDev},
		{"staging", EnvDev},
		{"", EnvDev},
	}

	for _, tt := range tests {
		t.Setenv("APP_ENV", tt.appEnv)
		assert.Equal(t, tt.want, Env(), tt.appEnv)
	}
}

func TestBlobKeyPrefix(t *testing.T) {
	assert.Equal(t, "", BlobKeyPrefix(EnvProduction))
	assert.Equal(t, "test/", BlobKeyPrefix(EnvTest))
	assert.Equal(t, "dev/", BlobKeyPrefix(EnvDev))
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "edie-styles-virtual-closet", BucketName(EnvProduction))
	assert.Equal(t, "edie-styles-virtual-closet-test", BucketName(EnvTest))
	assert.Equal(t, "edie-styles-virtual-closet-dev", BucketName(EnvDev))
}
