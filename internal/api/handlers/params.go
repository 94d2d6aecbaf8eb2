package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// governorateParam decodes the governorate path segment. Arabic names
// arrive percent-encoded.
func governorateParam(c *fiber.Ctx) string {
	raw := c.Params("governorate")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func paramUnescaped(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
