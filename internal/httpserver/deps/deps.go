package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mgwunna/portfolio/internal/httpserver/mw"
	"github.com/mgwunna/portfolio/internal/index"
	"github.com/mgwunna/portfolio/internal/logger"
	redisstore "github.com/mgwunna/portfolio/internal/store/redis"
	"github.com/mgwunna/portfolio/internal/view"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to trigger a reload
	AllowedCIDRS  []string           // IPs allowed to access operational endpoints
	TrustProxy    bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	ContentFile   string             // Path to site.yaml, empty for embedded content
	RedisClient   *redis.Client      // Redis client connection (nil if disabled)
	Store         *redisstore.Store  // Page snapshots and view counters (nil if disabled)
	PageIndex     *index.PageIndex   // In-memory page index
	Renderer      *view.Renderer     // Document renderer, reads TimeNow on every render
	RateLimit     mw.RateLimitConfig // Per-IP limit on page routes (Burst 0 disables it)
	ReloadTrigger chan struct{}      // Channel to trigger manual content reload
}
