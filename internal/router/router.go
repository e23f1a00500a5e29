package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipehub/internal/config"
	"recipehub/internal/handler"
	"recipehub/internal/health"
	"recipehub/internal/middleware"
	"recipehub/internal/validation"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	User    *handler.UserHandler
	Auth    *handler.AuthHandler
	Recipe  *handler.RecipeHandler
	Comment *handler.CommentHandler
	Health  *health.Handler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, signingKey []byte, authenticator middleware.Authenticator, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())

	e.Validator = validation.New()

	h.Health.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	secured := []echo.MiddlewareFunc{middleware.JWT(signingKey), middleware.Identity(authenticator)}
	limited := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	user := api.Group("/user")
	user.POST("/signup", h.User.Signup, limited)
	user.POST("/signin", h.Auth.Signin, limited)
	user.POST("/refresh", h.Auth.Refresh, limited)
	user.POST("/logout", h.Auth.Logout, secured...)
	user.GET("/profile", h.User.GetProfile, secured...)
	user.PATCH("/profile", h.User.UpdateProfile, secured...)
	user.POST("/withdraw", h.User.Withdraw, secured...)
	user.GET("/:id", h.User.GetUser, secured...)

	recipe := api.Group("/recipe")
	recipe.GET("/", h.Recipe.List)
	recipe.GET("/date/", h.Recipe.ListByDate)
	recipe.GET("/:id", h.Recipe.Get)
	recipe.POST("/", h.Recipe.Create, secured...)
	recipe.PATCH("/:id", h.Recipe.Edit, secured...)
	recipe.DELETE("/:id", h.Recipe.Delete, secured...)
	recipe.POST("/:id/like", h.Recipe.Like, secured...)
	recipe.DELETE("/:id/like", h.Recipe.Unlike, secured...)

	recipe.GET("/:id/comment", h.Comment.List)
	recipe.POST("/:id/comment", h.Comment.Create, secured...)
	recipe.PATCH("/:id/comment/:commentId", h.Comment.Update, secured...)
	recipe.DELETE("/:id/comment/:commentId", h.Comment.Delete, secured...)
	recipe.POST("/:id/comment/:commentId/like", h.Comment.Like, secured...)
	recipe.DELETE("/:id/comment/:commentId/like", h.Comment.Unlike, secured...)
}
