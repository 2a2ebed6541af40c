package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// Validity of the presigned read links.
const presignedURLExpiration = 15 * time.Minute

// slightly less than expiration so a cached link is never handed out stale
const cacheCleanupInterval = 12 * time.Minute

type ImageURLProvider interface {
	GetReadURL(ctx context.Context, objectKey string) (string, error)
}

// ImageURLCache keeps presigned item image links in ristretto and signs new
// ones on a miss.
type ImageURLCache struct {
	cache *cache.LoadableCache[string]
}

func NewImageURLCache(awsService AWSServiceProvider, bucketName string) (*ImageURLCache, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	loadFunction := func(ctx context.Context, key any) (string, []store.Option, error) {
		objectKey, ok := key.(string)
		if !ok {
			return "", nil, fmt.Errorf("invalid key type provided to URL cache: expected string, got %T", key)
		}
		ImageURLCacheMissesTotal.Inc()
		url, err := awsService.GetPresignedR2FileReadURL(ctx, bucketName, objectKey)
		return url, []store.Option{store.WithExpiration(cacheCleanupInterval), store.WithCost(int64(len(url)))}, err
	}

	loadableCache := cache.NewLoadable[string](
		loadFunction,
		cache.New[string](ristrettoStore),
	)
	log.Println("Initialized image URL cache with Ristretto")
	return &ImageURLCache{cache: loadableCache}, nil
}

func (s *ImageURLCache) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", nil
	}
	return s.cache.Get(ctx, objectKey)
}
