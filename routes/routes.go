package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"xplore-backend/controllers"
	"xplore-backend/middleware"
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

func SetupRouter(
	sc *controllers.SpaceController,
	pc *controllers.PropertyController,
	cc *controllers.CatalogController,
	qc *controllers.QuoteController,
	ac *controllers.AuthController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// public site
		api.GET("/properties", pc.ListPublic)
		api.GET("/properties/:slug", pc.GetDetail)
		api.GET("/packages", controllers.GetTripPackages)
		api.GET("/flight-offers", controllers.GetFlightOffers)
		api.GET("/hero-slides", controllers.GetHeroSlides)
		api.GET("/reviews", controllers.GetReviews)
		api.GET("/settings/agency", controllers.GetAgencySettings)
		api.POST("/quotes", qc.Create)

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
		}

		admin := api.Group("/admin", middleware.RequireAdmin(jwtSecret))
		{
			admin.GET("/me", ac.Me)

			properties := admin.Group("/properties")
			{
				properties.GET("", pc.ListAdmin)
				properties.POST("", pc.Create)
				properties.PATCH("/:id", pc.Update)
				properties.DELETE("/:id", pc.Delete)

				properties.GET("/:id/spaces", sc.ListSpaces)
				properties.POST("/:id/spaces", sc.CreateSpace)
				properties.PUT("/:id/spaces/order", sc.ReorderSpaces)
			}

			spaces := admin.Group("/spaces")
			{
				spaces.PATCH("/:id", sc.RenameSpace)
				spaces.DELETE("/:id", sc.DeleteSpace)
				spaces.GET("/:id/beds", sc.ListBeds)
				spaces.POST("/:id/beds", sc.AddBed)
				spaces.PUT("/:id/photo", sc.SetPhoto)
				spaces.DELETE("/:id/photo", sc.ClearPhoto)
			}
			admin.DELETE("/beds/:id", sc.RemoveBed)

			bedTypes := admin.Group("/bed-types")
			{
				bedTypes.GET("", cc.ListBedTypes)
				bedTypes.POST("", cc.CreateBedType)
				bedTypes.PUT("/:id", cc.UpdateBedType)
				bedTypes.DELETE("/:id", cc.DeleteBedType)
			}

			spaceTypes := admin.Group("/space-types")
			{
				spaceTypes.GET("", cc.ListSpaceTypes)
				spaceTypes.POST("", cc.CreateSpaceType)
				spaceTypes.PUT("/:id", cc.UpdateSpaceType)
				spaceTypes.DELETE("/:id", cc.DeleteSpaceType)
			}

			packages := admin.Group("/packages")
			{
				packages.GET("", controllers.GetTripPackages)
				packages.POST("", controllers.CreateTripPackage)
				packages.PATCH("/:id", controllers.UpdateTripPackage)
				packages.DELETE("/:id", controllers.DeleteTripPackage)
			}

			offers := admin.Group("/flight-offers")
			{
				offers.GET("", controllers.GetFlightOffers)
				offers.POST("", controllers.CreateFlightOffer)
				offers.PATCH("/:id", controllers.UpdateFlightOffer)
				offers.DELETE("/:id", controllers.DeleteFlightOffer)
			}

			slides := admin.Group("/hero-slides")
			{
				slides.GET("", controllers.GetHeroSlides)
				slides.POST("", controllers.CreateHeroSlide)
				slides.PUT("/order", controllers.ReorderHeroSlides)
				slides.PATCH("/:id", controllers.UpdateHeroSlide)
				slides.DELETE("/:id", controllers.DeleteHeroSlide)
			}

			reviews := admin.Group("/reviews")
			{
				reviews.GET("", controllers.GetReviews)
				reviews.POST("", controllers.CreateReview)
				reviews.PATCH("/:id", controllers.UpdateReview)
				reviews.DELETE("/:id", controllers.DeleteReview)
			}

			admin.PUT("/settings/agency", controllers.UpdateAgencySettings)

			quotes := admin.Group("/quotes")
			{
				quotes.GET("", qc.List)
				quotes.GET("/export", qc.Export)
				quotes.POST("/:id/resend", qc.Resend)
			}
		}
	}

	return r
}
