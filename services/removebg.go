// services/removebg.go
package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/ediestyles/closet_backend/apperr"
)

const defaultSegmentURL = "https://sdk.photoroom.com/v1/segment"

// BackgroundRemover strips the background from an image, optionally cropping
// the result to the subject.
type BackgroundRemover interface {
	Process(ctx context.Context, img []byte, crop bool) ([]byte, error)
}

// PhotoroomService removes backgrounds through the Photoroom segment API.
type PhotoroomService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewPhotoroomService() *PhotoroomService {
	baseURL := os.Getenv("PHOTOROOM_API_URL")
	if baseURL == "" {
		baseURL = defaultSegmentURL
	}
	return &PhotoroomService{
		baseURL: baseURL,
		apiKey:  os.Getenv("PHOTOROOM_API_KEY"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type segmentRequest struct {
	ImageFileB64 string `json:"image_file_b64"`
	Crop         bool   `json:"crop"`
}

type segmentResponse struct {
	ResultB64 string `json:"result_b64"`
}

// Process sends the image to the segment endpoint and returns the processed
// image bytes. Network failures surface as Unavailable so callers map them to
// a 503 rather than a 500.
func (s *PhotoroomService) Process(ctx context.Context, img []byte, crop bool) ([]byte, error) {
	payload, err := json.Marshal(segmentRequest{
		ImageFileB64: base64.StdEncoding.EncodeToString(img),
		Crop:         crop,
	})
	if err != nil {
		return nil, apperr.Internal("error encoding background removal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, apperr.Internal("error creating background removal request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Unavailable("error removing image background: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Unavailable("error removing image background: status %d", resp.StatusCode)
	}

	var result segmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.Unavailable("error removing image background: %v", err)
	}

	data, err := base64.StdEncoding.DecodeString(result.ResultB64)
	if err != nil || len(data) == 0 {
		return nil, apperr.Unavailable("error removing image background: empty result")
	}
	return data, nil
}
