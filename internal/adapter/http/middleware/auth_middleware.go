package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"kyndly_ichra/internal/domain/auth"
	"kyndly_ichra/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorContextKey = "actor"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "No authorization token provided", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization token", http.StatusUnauthorized)
	errInsufficient = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// AuthConfig carries the token verification material. Issuance and key
// distribution are handled by the identity provider; this service only
// verifies and decodes the claims it needs.
type AuthConfig struct {
	Secret []byte
}

func NewAuthConfigFromEnv() AuthConfig {
	return AuthConfig{Secret: []byte(os.Getenv("JWT_SECRET"))}
}

// Authenticate verifies the bearer token and derives the request Actor
// from its claims: role, organizational identifiers, and an optional
// explicit permissions list (role defaults apply when absent).
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return cfg.Secret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actorFromClaims(claims))
		c.Next()
	}
}

// RequireCapabilities gates a route group on capability intersection.
func RequireCapabilities(required ...auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !actor.HasCapability(required...) {
			c.AbortWithStatusJSON(errInsufficient.HTTPStatus, errInsufficient.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFromContext fetches the actor stored by Authenticate.
func ActorFromContext(c *gin.Context) (auth.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return auth.Actor{}, false
	}
	actor, ok := v.(auth.Actor)
	return actor, ok
}

// SetActor injects an actor directly, for tests that bypass token parsing.
func SetActor(c *gin.Context, actor auth.Actor) {
	c.Set(actorContextKey, actor)
}

func actorFromClaims(claims jwt.MapClaims) auth.Actor {
	var permissions []string
	if raw, ok := claims["permissions"].([]interface{}); ok {
		for _, p := range raw {
			if s, ok := p.(string); ok {
				permissions = append(permissions, s)
			}
		}
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	return auth.NewActor(
		sub,
		email,
		auth.Role(stringClaim(claims, "role")),
		stringClaim(claims, "tpa_id"),
		stringClaim(claims, "broker_id"),
		stringClaim(claims, "employer_id"),
		permissions,
	)
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
