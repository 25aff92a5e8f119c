package middlewares

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var cacheClient *redis.Client

// InitCache connects the optional redis response cache. Listings are served
// straight from the handlers when REDIS_ADDR is unset.
func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := cacheClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, cache disabled: %v", err)
		cacheClient = nil
	}
}

type cachedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKey folds the caller's identity in alongside method, route and
// query: listings like /courses are narrowed per role, so entries must
// never be shared across callers with different identities.
func cacheKey(c *gin.Context) string {
	raw := fmt.Sprintf("%s:%s?%s|%s:%d",
		c.Request.Method, c.FullPath(), c.Request.URL.RawQuery,
		c.GetString("role"), c.GetUint("userID"))
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("httpcache:%x", sum)
}

// CacheResponse caches successful GET responses for ttl. Any redis error is
// transparent: the request falls through to the handler.
func CacheResponse(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheClient == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		ctx := c.Request.Context()

		if body, err := cacheClient.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header("X-Cache", "MISS")
		c.Next()

		if cw.Status() == http.StatusOK {
			if err := cacheClient.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err(); err != nil {
				log.Printf("cache store failed: %v", err)
			}
		}
	}
}
