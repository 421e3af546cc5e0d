package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-backend/controllers"
	"resort-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto /api.
func SetupRouter(
	rc *controllers.RoomController,
	sc *controllers.SessionController,
	stc *controllers.StayController,
	ac *controllers.AccountController,
	setc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			// static path, registered before /:id
			rooms.GET("/housekeeping", rc.GetHousekeeping)
			rooms.GET("/:id", rc.GetRoom)
			rooms.PATCH("/:id/status", rc.SetStatus)
			rooms.POST("/:id/clean", rc.MarkCleaned)
		}

		categories := api.Group("/room-categories")
		{
			categories.GET("", rc.GetCategories)
			categories.POST("", rc.SaveCategory)
		}

		sessions := api.Group("/sessions")
		{
			sessions.POST("", sc.Open)
			sessions.GET("/:id", sc.Get)
			sessions.DELETE("/:id", sc.Cancel)
			sessions.POST("/:id/rooms/:roomId/toggle", sc.ToggleRoom)
			sessions.POST("/:id/checkin", sc.CheckIn)
		}

		stays := api.Group("/stays")
		{
			stays.GET("", stc.GetStays)
			stays.GET("/:id", stc.GetStay)
			stays.POST("/:id/bill", stc.PreviewBill)
			stays.POST("/:id/checkout", stc.Checkout)
		}

		accounts := api.Group("/accounts")
		{
			accounts.GET("", ac.GetEntries)
			accounts.POST("", ac.CreateEntry)
			accounts.GET("/revenue", ac.GetRevenue)
			accounts.GET("/gst", ac.GetGSTReport)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/resort", setc.GetResortSettings)
			settings.PUT("/resort", setc.UpdateResortSettings)
		}
	}

	return r
}
