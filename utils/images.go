// utils/images.go
package utils

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ediestyles/closet_backend/apperr"
)

// validImagePrefixes are the accepted data-URL headers for uploads.
var validImagePrefixes = []string{
	"data:image/png;base64",
	"data:image/jpg;base64",
	"data:image/jpeg;base64",
}

// DecodeBase64Image converts a base64 data-URL into raw image bytes.
func DecodeBase64Image(dataURL string) ([]byte, error) {
	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 {
		return nil, apperr.InvalidArgument("not a valid base64 image string")
	}

	valid := false
	for _, prefix := range validImagePrefixes {
		if parts[0] == prefix {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperr.InvalidArgument("not a valid base64 image string")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(data) == 0 {
		return nil, apperr.InvalidArgument("not a valid base64 image string")
	}

	return data, nil
}

// CreateImageThumbnail scales the image down to fit inside a width x height
// bounding box, preserving aspect ratio, and re-encodes it as PNG.
func CreateImageThumbnail(imgData []byte, width, height int) ([]byte, error) {
	if len(imgData) == 0 {
		return nil, apperr.Internal("invalid buffer input")
	}

	img, err := imaging.Decode(bytes.NewReader(imgData))
	if err != nil {
		return nil, apperr.Internal("error creating image thumbnail: %v", err)
	}

	thumb := imaging.Fit(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, apperr.Internal("error creating image thumbnail: %v", err)
	}

	return buf.Bytes(), nil
}

// ParseFileNameStem extracts the display name from an uploaded file name,
// stripping any path and extension.
func ParseFileNameStem(fullFileName string) string {
	base := filepath.Base(fullFileName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "." || stem == string(filepath.Separator) {
		return ""
	}
	return stem
}
