package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mainra/showcase/internal/admin"
	"github.com/mainra/showcase/internal/i18n"
	"github.com/mainra/showcase/internal/index"
	"github.com/mainra/showcase/internal/live"
	"github.com/mainra/showcase/internal/logger"
	"github.com/mainra/showcase/internal/site"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	AllowedHosts []string // Host headers allowed on ops and admin routes
	AllowedCIDRS []string // IPs allowed on ops and admin routes
	TrustProxy   bool     // resolve client IPs from proxy headers

	AdminRateBurst  int
	AdminRatePerMin int

	RedisClient *redis.Client // nil when the in-process cache is used

	Snapshot      *index.Snapshot   // published document served to visitors
	Controller    *admin.Controller // admin working copy
	Hub           *live.Hub         // live reload clients
	Bundle        *i18n.Bundle
	Renderer      *site.Renderer
	FeaturedLimit int
	LiveReload    bool          // inject the live reload script into pages
	ReloadTrigger chan struct{} // buffered(1); a full channel means a reload is queued
}

// Now returns the current time from TimeNow, or time.Now when unset.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
