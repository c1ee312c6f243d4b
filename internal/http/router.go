package api

import (
	stdhttp "net/http"
	"strings"

	h "luxride/internal/http/handlers"
	"luxride/internal/http/middleware"
	"luxride/internal/metrics"
	"luxride/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mode selects which surface a server exposes.
type Mode int

const (
	// ModeFull is the driver API: session, bookings, earnings, receipts and profile.
	ModeFull Mode = iota
	// ModeProfile is the slim profile server with static files.
	ModeProfile
)

type Options struct {
	Mode                 Mode
	CORSOrigins          []string
	RequireDriverSession bool
	StaticDir            string
	BodyLimit            int64
}

func NewRouter(a *h.API, opts Options) *gin.Engine {
	metrics.Register()
	if opts.BodyLimit <= 0 {
		opts.BodyLimit = middleware.DefaultBodyLimit
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(opts.CORSOrigins), middleware.BodyLimit(opts.BodyLimit))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	api := r.Group("/api")
	api.GET("/health", a.Health)
	mountProfile(api, a)

	switch opts.Mode {
	case ModeProfile:
		mountStatic(r, opts.StaticDir)
	default:
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
		api.GET("/routes", h.Routes)
		mountDriverAPI(api, a, opts.RequireDriverSession)
		r.NoRoute(func(c *gin.Context) {
			c.JSON(stdhttp.StatusNotFound, gin.H{
				"error":  "route not found",
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
		})
	}

	h.SetRouter(r)
	return r
}

func mountProfile(api *gin.RouterGroup, a *h.API) {
	api.POST("/driver/profile", a.SaveDriverProfile)
	api.GET("/driver/profile", a.GetDriverProfile)
	api.POST("/driver/photo", a.SaveDriverPhoto)
	api.GET("/driver/photo", a.GetDriverPhoto)
	api.POST("/driver/profile/full", a.SaveFullProfile)
	api.GET("/driver/profile/full", a.GetFullProfile)
}

func mountDriverAPI(api *gin.RouterGroup, a *h.API, requireDriver bool) {
	session := api.Group("/session")
	session.GET("", a.GetSession)
	session.POST("", a.CreateSession)
	session.DELETE("", a.DeleteSession)

	guarded := []gin.HandlerFunc{}
	if requireDriver {
		guarded = append(guarded, a.RequireDriver)
	}

	// Rider-facing.
	bookings := api.Group("/bookings")
	bookings.GET("", a.ListBookings)
	bookings.POST("", a.CreateBooking)
	bookings.GET("/:id", a.GetBooking)

	api.GET("/trips", a.ListTrips)
	receipts := api.Group("/receipts")
	receipts.GET("/:id", a.GetReceipt)
	receipts.GET("/:id/text", a.ReceiptText)
	receipts.GET("/:id/pdf", a.ReceiptPDF)
	receipts.POST("/:id/rating", a.RateRide)

	actions := bookings.Group("/:id", guarded...)
	actions.POST("/accept", a.AcceptBooking)
	actions.POST("/reject", a.RejectBooking)
	actions.POST("/start", a.StartBooking)
	actions.POST("/complete", a.CompleteBooking)
	actions.PATCH("/status", a.UpdateBookingStatus)

	driver := api.Group("/driver", guarded...)
	driver.GET("/orders", a.Orders)
	driver.GET("/requests", a.RecentRequests)
	driver.GET("/dashboard", a.Dashboard)
	driver.GET("/earnings", a.EarningsSummary)
	driver.GET("/earnings/monthly", a.MonthlyEarnings)
	driver.GET("/earnings/export", a.ExportEarnings)
	driver.GET("/me", a.GetAccount)
	driver.PUT("/me", a.UpdateAccount)
}

// mountStatic serves files from dir for anything outside /api. Dotfiles are never served.
func mountStatic(r *gin.Engine, dir string) {
	if dir == "" {
		dir = "."
	}
	files := stdhttp.FileServer(stdhttp.Dir(dir))
	r.NoRoute(func(c *gin.Context) {
		if (c.Request.Method != stdhttp.MethodGet && c.Request.Method != stdhttp.MethodHead) || hasHiddenSegment(c.Request.URL.Path) {
			c.JSON(stdhttp.StatusNotFound, gin.H{"success": false, "message": "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

func hasHiddenSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
