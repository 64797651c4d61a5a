package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vchoerlle/zelofinanceiro-sub001/internal/models"
)

// requestBase returns the base URL of the request as set by URLMiddleware.
func requestBase(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL))
}

// URLMiddleware stores the base URL of the deployment on the context, so
// that handlers can build absolute resource links. The URL is taken from
// the environment when set and derived from the request otherwise.
func URLMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		base := os.Getenv("API_URL")
		if base == "" {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			base = scheme + "://" + c.Request.Host
		}

		c.Set(string(models.DBContextURL), strings.TrimRight(base, "/"))
	}
}

// AuthMiddleware verifies the Bearer token and stores the user ID on the
// context. Requests without a valid token are rejected.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "a Bearer token is required to use this endpoint",
			})
			return
		}

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "the session token is invalid or expired",
			})
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "the session token is invalid or expired",
			})
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "the session token is invalid or expired",
			})
			return
		}

		c.Set(string(models.DBContextUser), userID)
	}
}
