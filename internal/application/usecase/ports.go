package usecase

import (
	"context"
	"time"
)

// Cache kısa ömürlü rapor önbelleği. Get ikinci dönüşünde anahtarın bulunup
// bulunmadığını söyler; bulunamama hata değildir. Redis uygulaması
// infrastructure/cache altındadır ve kapalıyken no-op davranır.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
