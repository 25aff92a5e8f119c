package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// keyRouter routes GET /courses through a stub that stamps the caller's
// identity from headers, the way AuthMiddleware does, and records the
// cache key computed for the request.
func keyRouter(keys *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/courses", func(c *gin.Context) {
		if role := c.GetHeader("X-Test-Role"); role != "" {
			c.Set("role", role)
		}
		if c.GetHeader("X-Test-User") == "7" {
			c.Set("userID", uint(7))
		}
		*keys = append(*keys, cacheKey(c))
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func get(r *gin.Engine, target, role, user string) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
}

func TestCacheKeyVariesByCallerIdentity(t *testing.T) {
	var keys []string
	r := keyRouter(&keys)

	get(r, "/courses", "instructor", "7")
	get(r, "/courses", "admin", "")
	get(r, "/courses", "instructor", "7")

	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	if keys[0] == keys[1] {
		t.Errorf("instructor and admin requests share cache key %q", keys[0])
	}
	if keys[0] != keys[2] {
		t.Errorf("same caller got different keys: %q vs %q", keys[0], keys[2])
	}
}

func TestCacheKeyVariesByQuery(t *testing.T) {
	var keys []string
	r := keyRouter(&keys)

	get(r, "/courses?status=active", "admin", "")
	get(r, "/courses?status=inactive", "admin", "")

	if keys[0] == keys[1] {
		t.Errorf("different queries share cache key %q", keys[0])
	}
}

func TestCacheResponsePassesThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cacheClient = nil

	calls := 0
	r := gin.New()
	r.GET("/memberships", CacheResponse(0), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	get(r, "/memberships", "", "")
	get(r, "/memberships", "", "")

	if calls != 2 {
		t.Errorf("expected handler to run twice without redis, ran %d times", calls)
	}
}
