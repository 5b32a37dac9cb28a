package middleware

import "github.com/gofiber/fiber/v2"

// Identity/auth is out of scope; the owner is whatever the gateway in front
// of this service put in the header.
const OwnerHeader = "X-Owner-ID"

const OwnerLocal = "ownerID"

func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := c.Get(OwnerHeader)
		if owner == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "X-Owner-ID header is required",
			})
		}
		c.Locals(OwnerLocal, owner)
		return c.Next()
	}
}
