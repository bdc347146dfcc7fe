package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fleamart/internal/auth"
	"fleamart/internal/config"
	"fleamart/internal/handler"
	"fleamart/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.SignUp)
	api.POST("/auth/login", authHandler.SignIn)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.SignOut)
	api.GET("/items", itemHandler.List)
	api.GET("/items/:id", itemHandler.Get)

	// Secured routes: echo-jwt rejects missing, malformed, or expired tokens,
	// then CurrentUser re-resolves the account from the database.
	secured := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization,
		}),
		auth.CurrentUser(userRepo),
	)

	secured.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, c.Get(auth.ContextUserKey))
	})

	// Item routes
	secured.POST("/items", itemHandler.Create)
	secured.PATCH("/items/:id/status", itemHandler.Purchase)
	secured.DELETE("/items/:id", itemHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
