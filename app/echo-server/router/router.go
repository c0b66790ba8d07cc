package router

import (
	"insureAdvisor/internal/middleware"
	"insureAdvisor/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	signup := api.Group("/signup")
	signup.POST("/send-verification", handler.SendVerification)
	signup.POST("/verify", handler.VerifyEmail)
	signup.POST("/register", handler.Register)

	auth := api.Group("/auth")
	auth.POST("/login", handler.Login)
	auth.GET("/user", handler.CurrentUser, authRequired)
}

func SetupScoringRoutes(api *echo.Group, handler *rest.ScoringHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/prominence-score", handler.CalculateProminence, authRequired)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.GET("", handler.GetRecommendations)
	reco.GET("/history", handler.GetHistory)
	reco.POST("/chatbot", handler.Chatbot)
}

func SetupPremiumRoutes(api *echo.Group, handler *rest.PremiumHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/premium-calculator", handler.Calculate, authRequired)
}

func SetupTransactionRoutes(api *echo.Group, handler *rest.TransactionsHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/payment", handler.ProcessPayment, authRequired)
	api.GET("/transactions", handler.GetTransactions, authRequired)
}

func SetupActivityRoutes(api *echo.Group, handler *rest.ActivityHandler, authRequired echo.MiddlewareFunc) {
	activities := api.Group("/activities", authRequired)

	activities.POST("", handler.LogActivity)
	activities.GET("", handler.GetActivities)
}

func SetupContactRoutes(api *echo.Group, handler *rest.ContactHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/contact", handler.SubmitInquiry, authRequired)
}

func SetupDashboardRoutes(api *echo.Group, handler *rest.DashboardHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/dashboard", handler.GetDashboard, authRequired)
	api.GET("/company-dashboard", handler.GetCompanyDashboard, authRequired, middleware.CompanyOnly())
}
