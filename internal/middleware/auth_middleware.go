package middleware

import (
	"context"
	"errors"
	"insureAdvisor/domain"
	"insureAdvisor/pkg/logger"
	"insureAdvisor/pkg/utils"
	"net/http"
	"strings"
	"time"

	jsonres "insureAdvisor/pkg/response"

	"github.com/labstack/echo/v4"
)

// UserFinder resolves a token subject to a stored account.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// AuthMiddleware validates the bearer token and loads the account it names.
// Credential problems are 401; a well-formed token naming an unknown account
// is 404; a storage failure during the lookup is 500. On success the email,
// full user, and user type are set on the request context.
func AuthMiddleware(userFinder UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Authorization token required", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Authorization token required", nil,
				))
			}

			tokenString := tokenParts[1]

			claims, err := utils.ParseJWT(tokenString)
			if err != nil {
				logger.Warn("Failed to parse token", "error", err.Error())
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid or expired token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Token has expired", nil,
				))
			}

			if claims.Email == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token payload", nil,
				))
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			user, err := userFinder.FindByEmail(ctx, claims.Email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					logger.Warn("Token subject not found", "email", claims.Email)
					return c.JSON(http.StatusNotFound, jsonres.Error(
						"NOT_FOUND", "User not found", nil,
					))
				}
				logger.Error("Failed to load token subject", err, "email", claims.Email)
				return c.JSON(http.StatusInternalServerError, jsonres.Error(
					"INTERNAL_SERVER_ERROR", "Failed to load user", nil,
				))
			}

			c.Set("email", user.Email)
			c.Set("user", user)
			c.Set("user_type", user.UserType)

			return next(c)
		}
	}
}

// CompanyOnly gates routes that expose aggregate data to company accounts.
func CompanyOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, ok := c.Get("user_type").(string)
			if !ok || userType != domain.UserTypeCompany {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Company access required", nil,
				))
			}

			return next(c)
		}
	}
}
