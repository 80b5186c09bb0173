// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"wagehire-backend/internal/auth"
	"wagehire-backend/internal/controller/admin"
	"wagehire-backend/internal/controller/interview"
	"wagehire-backend/internal/controller/user"
	"wagehire-backend/internal/middleware"
	"wagehire-backend/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "wagehire-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	googleOauth := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
	}

	blacklist := auth.NewInMemoryBlacklistStore()
	gAuth := auth.NewOauthLoginHandler(s.DB, googleOauth, "https://www.googleapis.com/oauth2/v2/userinfo")
	lAuth := auth.NewLocalAuthHandler(s.DB)
	logout := auth.NewLogoutController(blacklist)
	interviewController := interview.NewInterviewController(s.DB)
	userController := user.NewUserController(s.DB)
	adminController := admin.NewAdminController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.GET("/health", s.healthHandler)
	r.GET("/health/db", s.dbHealthHandler)

	api := r.Group("/api")
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("register", lAuth.RegisterHandler)
			authRoute.POST("login", lAuth.LoginHandler)
			authRoute.POST("google", gAuth.GoogleLoginHandler)
			authRoute.GET("google/callback", gAuth.Callback)

			authRoute.Use(middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(blacklist))
			authRoute.GET("profile", lAuth.ProfileHandler)
			authRoute.POST("logout", logout.LogoutHandler)
		}

		needAuth := api.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(blacklist), middleware.SizeLimit(1<<20))

			interviewRoute := needAuth.Group("/interviews")
			{
				interviewRoute.POST("", interviewController.CreateInterview)
				interviewRoute.GET("", interviewController.GetInterviews)
				interviewRoute.GET(":id", interviewController.GetInterviewByID)
				interviewRoute.PUT(":id", interviewController.UpdateInterview)
				interviewRoute.DELETE(":id", interviewController.DeleteInterview)
				interviewRoute.POST(":id/feedback", interviewController.SubmitFeedback)
			}

			needAuth.GET("/dashboard/stats", interviewController.DashboardStats)

			userRoute := needAuth.Group("/users")
			{
				userRoute.GET("profile", userController.GetProfile)
				userRoute.PUT("profile", userController.UpdateProfile)
			}

			adminRoute := needAuth.Group("/admin")
			{
				adminRoute.Use(middleware.CheckRole(model.RoleAdmin))
				adminRoute.GET("users", adminController.GetUsers)
				adminRoute.PUT("users/:id/role", adminController.UpdateUserRole)
				adminRoute.DELETE("users/:id", adminController.DeleteUser)
				adminRoute.GET("interviews", adminController.GetInterviews)
				adminRoute.GET("dashboard", adminController.Dashboard)
				adminRoute.GET("reports", adminController.Reports)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *MyServer) dbHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
