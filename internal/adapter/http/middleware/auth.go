package middleware

import (
	"net/http"
	"strings"

	"workorder_service/internal/domain/entities"
	"workorder_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

// Claims are the token claims issued by the auth service. The subject is
// the opaque actor id.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errInvalidRole  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unknown actor role", http.StatusUnauthorized)
)

// Auth validates the bearer token and stores the resulting Actor in the
// request context. Identity is the auth service's problem; this middleware
// only verifies the signature and the role claim.
func Auth(accessSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &Claims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(accessSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		role := entities.Role(claims.Role)
		if !role.Valid() {
			c.AbortWithStatusJSON(errInvalidRole.HTTPStatus, errInvalidRole.ToHTTPError())
			return
		}

		c.Set(actorContextKey, entities.Actor{
			ID:   claims.Subject,
			Name: claims.Name,
			Role: role,
		})
		c.Next()
	}
}

// MustActor returns the Actor stored by Auth.
func MustActor(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
