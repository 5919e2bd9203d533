// config/storage.go
package config

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// ConnectStorage opens the Google Cloud Storage bucket for the current
// environment. Credentials come from GCS_CREDENTIALS_FILE or, when unset,
// application default credentials.
func ConnectStorage() *storage.BucketHandle {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if credFile := os.Getenv("GCS_CREDENTIALS_FILE"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		log.Fatal("Cloud Storage connection error:", err)
	}

	bucketName := BucketName(Env())
	log.Printf("Using storage bucket: %s", bucketName)

	return client.Bucket(bucketName)
}
