package controllers

import (
	"context"
	"log"
	"sync"

	"stylesnapapi/services"

	"github.com/getsentry/sentry-go"
)

// ImagePresigner turns stored object keys into readable links, through the
// cache first and straight through the signer when the cache fails.
type ImagePresigner struct {
	AWSService services.AWSServiceProvider
	URLCache   services.ImageURLProvider
}

func (p *ImagePresigner) readURL(ctx context.Context, objectKey string) string {
	if objectKey == "" {
		return ""
	}
	url, err := p.URLCache.GetReadURL(ctx, objectKey)
	if err == nil {
		return url
	}

	log.Printf("CACHE WARNING: Cache system failed for key '%s': %v. Triggering manual R2 fallback.", objectKey, err)
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("failure_type", "cache_system")
		scope.SetExtra("objectKey", objectKey)
		sentry.CaptureException(err)
	})
	services.ImageURLCacheFallbacksTotal.Inc()

	bucketName := services.GetEnv("R2_BUCKET_NAME", "")
	fallbackUrl, fallbackErr := p.AWSService.GetPresignedR2FileReadURL(ctx, bucketName, objectKey)
	if fallbackErr != nil {
		// the item is still returned, just without a picture
		log.Printf("CRITICAL: Manual R2 fallback also failed for key '%s': %v", objectKey, fallbackErr)
		sentry.CaptureException(fallbackErr)
		return ""
	}
	return fallbackUrl
}

// ReadURLs signs every key concurrently; result[i] belongs to keys[i].
func (p *ImagePresigner) ReadURLs(ctx context.Context, keys []string) []string {
	urls := make([]string, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(index int, objectKey string) {
			defer wg.Done()
			urls[index] = p.readURL(ctx, objectKey)
		}(i, key)
	}
	wg.Wait()
	return urls
}
