package auth

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"fleamart/internal/repository"
)

// ContextUserKey is the echo context key under which the resolved user is stored.
const ContextUserKey = "currentUser"

// CurrentUser returns middleware that resolves the authenticated user from the
// JWT already validated by the echo-jwt middleware. The payload identity is
// re-checked against the database by both id and username, so tokens minted
// for accounts that were since removed or renamed stop working.
func CurrentUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			userID, ok := claims["user_id"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}
			username, ok := claims["username"].(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			user, err := userRepo.FindByIDAndUsername(c.Request().Context(), uint(userID), username)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
