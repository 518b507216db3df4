package middleware

import (
	"regexp"
	"review_platform/db/redis"
	"review_platform/internal/auth"
	"review_platform/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const revokedTokenPrefix = "jwtKey:"

// NewAuthMiddleware guards mutating endpoints. Every request re-verifies
// its bearer token against the identity provider, nothing is cached here.
// On success the resolved identity is stashed in Locals, that value is the
// only source of the authoritative userId downstream.
func NewAuthMiddleware(verifier auth.IVerifier, blacklist *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Get("Authorization", "")
		if accessToken == "" {
			return response.ResponseError(c, response.TokenNotProvided, fiber.StatusUnauthorized)
		}

		strArr := strings.Split(accessToken, " ")
		if len(strArr) != 2 || !strings.EqualFold(strArr[0], "Bearer") || strArr[1] == "" {
			return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
		}
		accessToken = strArr[1]

		if blacklist != nil {
			result, err := blacklist.Get(c.UserContext(), revokedTokenPrefix+accessToken)
			if err == nil && result != "" {
				return response.ResponseError(c, response.RevokedToken, fiber.StatusUnauthorized)
			}
		}

		userData, err := verifier.Verify(c.UserContext(), accessToken)
		if err != nil {
			return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
		}
		if userData == nil || userData.UserId == "" {
			return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
		}

		c.Locals("userData", userData)
		return c.Next()
	}
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
