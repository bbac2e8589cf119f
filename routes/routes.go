package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tourism-backend/controllers"
	"tourism-backend/middleware"
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

// SetupRouter wires controllers onto the API surface.
func SetupRouter(
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	lc *controllers.LookupController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

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
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.ListHotels)

			// static segments registered alongside /:id
			hotels.GET("/search", hc.SearchHotels)
			hotels.GET("/amenities/:type", hc.GetAmenitiesByType)

			hotels.GET("/:id", hc.GetHotel)
			hotels.POST("", middleware.SanitizeInput(), middleware.ValidateHotelPayload(), hc.CreateHotel)
			hotels.PUT("/:id", middleware.SanitizeInput(), hc.UpdateHotel)
			hotels.PATCH("/:id/accommodation-type", hc.UpdateAccommodationType)
			hotels.DELETE("/:id", hc.DeleteHotel)

			hotels.DELETE("/:id/images/:imageId", hc.DeleteImage)

			hotels.GET("/:id/rooms", rc.GetRooms)
			hotels.POST("/:id/rooms", rc.CreateRoom)
			hotels.PUT("/:id/rooms/:roomId", rc.UpdateRoom)
			hotels.DELETE("/:id/rooms/:roomId", rc.DeleteRoom)
		}

		states := api.Group("/states")
		{
			states.GET("", lc.GetStates)
			states.POST("", lc.CreateState)
			states.PUT("/:id", lc.UpdateState)
			states.DELETE("/:id", lc.DeleteState)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", lc.GetCategories)
			categories.POST("", lc.CreateCategory)
			categories.DELETE("/:id", lc.DeleteCategory)
		}
	}

	return r
}
