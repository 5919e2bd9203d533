// utils/blob_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemBlobKeys(t *testing.T) {
	tests := []struct {
		prefix    string
		wantFull  string
		wantSmall string
	}{
		{"", "items/abc/full.png", "items/abc/small.png"},
		{"test/", "test/items/abc/full.png", "test/items/abc/small.png"},
		{"dev/", "dev/items/abc/full.png", "dev/items/abc/small.png"},
	}

	for _, tt := range tests {
		full, small := ItemBlobKeys(tt.prefix, "abc")
		assert.Equal(t, tt.wantFull, full)
		assert.Equal(t, tt.wantSmall, small)
	}
}
