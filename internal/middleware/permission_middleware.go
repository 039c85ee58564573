package middleware

import (
	"berkas-tanah-backend/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

// Permission menolak request jika role actor tidak punya izin untuk action.
// Tabel permission statis di package rbac; tidak ada lookup database.
func Permission(action rbac.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Autentikasi diperlukan"})
		}

		if !rbac.CanPerform(actor.Role, action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Akses ditolak: role " + string(actor.Role) + " tidak memiliki izin " + string(action),
			})
		}

		return c.Next()
	}
}

// Role meloloskan hanya role yang disebut. Dipakai untuk endpoint khusus
// (misal manajemen user yang hanya untuk ADMIN).
func Role(allowedRoles ...rbac.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Autentikasi diperlukan"})
		}

		for _, role := range allowedRoles {
			if role == actor.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: role Anda tidak diizinkan mengakses endpoint ini"})
	}
}
