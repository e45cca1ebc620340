package router

import (
	"github.com/gin-gonic/gin"

	"api-holiday-a99/handler"
	"api-holiday-a99/middleware"
)

// Handlers bundles everything SetupRouter needs to wire the routes.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Day       *handler.DayHandler
	Files     *handler.FileHandler
	Cities    *handler.CityHandler
	Manage    *handler.ManageHandler
	Report    *handler.ReportHandler
}

// SetupRouter wires all routes. Everything except /auth sits behind the role
// gate; the cities and manage surfaces additionally require the admin role.
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", h.Auth.LoginHandler)
	}

	app := router.Group("/", middleware.AuthMiddleware())
	{
		app.GET("/dashboard", h.Dashboard.DashboardHandler)
		app.GET("/report", h.Report.FullReportHandler)

		// City list is readable by everyone signed in; the itinerary form
		// needs it for its dropdown.
		app.GET("/cities", h.Cities.ListHandler)

		app.GET("/timeline", h.Day.ActiveDatesHandler)
		app.GET("/timeline/:date", h.Day.DetailHandler)
		app.POST("/timeline/:date/itineraries", h.Day.AddItineraryHandler)
		app.GET("/timeline/:date/itineraries/stream", h.Day.StreamItinerariesHandler)
		app.POST("/timeline/:date/expenses", h.Day.AddExpenseHandler)
		app.GET("/timeline/:date/expenses/stream", h.Day.StreamExpensesHandler)
		app.GET("/timeline/:date/files", h.Files.ListHandler)
		app.GET("/timeline/:date/files/stream", h.Files.StreamHandler)
		app.POST("/timeline/:date/files", h.Files.UploadHandler)

		app.PATCH("/itineraries/:id/status", h.Day.ToggleStatusHandler)
		app.DELETE("/itineraries/:id", h.Day.DeleteItineraryHandler)
		app.DELETE("/expenses/:id", h.Day.DeleteExpenseHandler)
		app.DELETE("/files/:id", h.Files.DeleteHandler)

		admin := app.Group("/", middleware.AdminOnly())
		{
			admin.POST("/cities", h.Cities.AddHandler)
			admin.DELETE("/cities/:id", h.Cities.DeleteHandler)
			// Not under /cities: a static "stream" segment cannot share the
			// position of the :id wildcard in gin's route tree.
			admin.GET("/streams/cities", h.Cities.StreamHandler)

			admin.GET("/manage", h.Manage.OverviewHandler)
			admin.PUT("/manage/budget", h.Manage.UpdateBudgetHandler)
		}
	}

	return router
}
