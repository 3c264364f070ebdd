package storage

import (
	"fmt"
	"strings"

	"github.com/timmy/mediagallery/internal/config"
	"github.com/timmy/mediagallery/internal/logger"
)

// NewStorage creates an ObjectStorage instance based on the configuration.
// Parameters:
//   - cfg: storage configuration including endpoint, credentials, and bucket.
//
// Returns:
//   - ObjectStorage: initialized storage client implementation.
//   - error: non-nil if the storage client cannot be created.
func NewStorage(cfg *config.StorageConfig) (ObjectStorage, error) {
	storeType := StorageType(strings.ToLower(cfg.Type))
	if storeType == "" {
		storeType = detectStorageType(cfg.Endpoint)
	}

	switch storeType {
	case StorageTypeMemory:
		// Objects live only for the life of the process.
		logger.GetDefault().WithFields(logger.Fields{
			"type":     string(storeType),
			"endpoint": cfg.Endpoint,
			"bucket":   cfg.Bucket,
		}).Warn("Using in-memory object storage; the bucket starts empty and is not persisted")
		return NewMemoryStorage(cfg.PublicURL), nil
	case StorageTypeR2, StorageTypeS3, StorageTypeS3Compatible:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("storage endpoint is required for %s", storeType)
		}
		return NewS3Storage(&S3Config{
			Type:      storeType,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			PublicURL: cfg.PublicURL,
		})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// detectStorageType attempts to detect the storage type from the endpoint
func detectStorageType(endpoint string) StorageType {
	endpoint = strings.ToLower(endpoint)

	switch {
	case endpoint == "":
		return StorageTypeMemory
	case strings.Contains(endpoint, "r2.cloudflarestorage.com"):
		return StorageTypeR2
	case strings.Contains(endpoint, "amazonaws.com"):
		return StorageTypeS3
	default:
		return StorageTypeS3Compatible
	}
}
