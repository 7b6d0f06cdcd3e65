package routes

import (
	"questbook/controllers"
	"questbook/middleware"
	"questbook/services/booking"
	"questbook/services/catalog"
	"questbook/services/i18n"
	"questbook/services/upstream"
	utils "questbook/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, client *upstream.Client, cat *catalog.Service, wizard *booking.Wizard, i18nSvc *i18n.Service) {
	// Create controllers
	gamesController := &controllers.GamesController{Catalog: cat, Upstream: client, I18n: i18nSvc}
	bookingController := &controllers.BookingController{Wizard: wizard, I18n: i18nSvc}
	reservationsController := &controllers.ReservationsController{Upstream: client, I18n: i18nSvc}
	consentController := &controllers.ConsentController{}
	languageController := &controllers.LanguageController{I18n: i18nSvc}
	pagesController := &controllers.PagesController{Catalog: cat, Upstream: client, I18n: i18nSvc}

	// utils global
	router.Use(utils.ErrorHandler())
	router.Use(middleware.Language(i18nSvc))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// OTP issuance sends email and verification can be brute-forced, so
	// both get a tight per-IP budget
	otpLimiter := middleware.NewRateLimiter(0.2, 3)

	api := router.Group("/api")

	api.GET("/ping", controllers.Ping)

	games := api.Group("/games")
	{
		games.GET("", gamesController.List)
		games.GET("/featured", gamesController.Featured)
		games.GET("/:id", gamesController.Detail)
	}

	book := api.Group("/booking")
	{
		book.POST("", bookingController.Start)
		book.GET("", bookingController.Get)
		book.POST("/date", bookingController.SelectDate)
		book.POST("/time", bookingController.SelectTime)
		book.POST("/players", bookingController.SetPlayers)
		book.POST("/identity", otpLimiter.Limit(), bookingController.SubmitIdentity)
		book.POST("/resend-otp", otpLimiter.Limit(), bookingController.ResendOTP)
		book.POST("/verify-otp", otpLimiter.Limit(), bookingController.VerifyOTP)
		book.POST("/disclaimer", bookingController.SetDisclaimer)
		book.POST("/requirements", bookingController.SetRequirements)
		book.POST("/confirm", bookingController.Confirm)
		book.POST("/back", bookingController.Back)
	}

	api.GET("/reservations", reservationsController.List)

	consentGroup := api.Group("/consent")
	{
		consentGroup.GET("", consentController.Get)
		consentGroup.POST("/accept-all", consentController.AcceptAll)
		consentGroup.POST("/reject-all", consentController.RejectAll)
		consentGroup.POST("", consentController.Save)
	}

	language := api.Group("/language")
	{
		language.GET("", languageController.Get)
		language.PUT("", languageController.Set)
		language.GET("/messages", languageController.Messages)
	}

	pages := api.Group("/pages")
	{
		pages.GET("/home", pagesController.Home)
		pages.GET("/about", pagesController.About)
		pages.GET("/contact", pagesController.Contact)
		pages.GET("/legal/:document", pagesController.Legal)
		pages.GET("/payment/:outcome", pagesController.PaymentResult)
	}
}
