package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
)

// ContextUserKey is the echo context key under which CurrentUser stores
// the resolved user.
const ContextUserKey = "currentUser"

// UserResolver loads a user by id. Satisfied by repository.UserRepository.
type UserResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// CurrentUser validates the bearer token and resolves the encoded user
// id to a full User record, making it available to downstream handlers.
// Missing or invalid tokens yield 401; a token whose user has since
// disappeared yields 404.
func CurrentUser(jwtService *JWTService, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: err.Error(),
					Code:  "UNAUTHENTICATED",
				})
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: ErrInvalidToken.Error(),
					Code:  "UNAUTHENTICATED",
				})
			}

			// Fresh lookup on every request; the token may outlive the user.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
						Error: apperrors.ErrUserNotFound.Error(),
						Code:  "USER_NOT_FOUND",
					})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
					Error: "internal server error",
					Code:  "INTERNAL_ERROR",
				})
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user resolved by CurrentUser.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}

func extractBearer(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("malformed authorization header")
	}
	return parts[1], nil
}
