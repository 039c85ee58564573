package middleware

import (
	"strings"

	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/usecase"
	"berkas-tanah-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
)

// Auth memverifikasi bearer token, memuat ulang user dari database, dan
// menolak akun nonaktif sebelum pengecekan izin apapun. Actor disimpan di
// locals dan diteruskan eksplisit ke handler; tidak ada state user global.
func Auth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))

		claims, err := usecase.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid"})
		}

		// Role dan status aktif dibaca dari database, bukan dari isi token,
		// supaya penonaktifan atau pergantian role langsung berlaku.
		user, err := userRepo.GetByID(uint(userID))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User tidak ditemukan"})
		}
		if !user.Aktif {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Akun Anda telah dinonaktifkan. Hubungi administrator."})
		}

		c.Locals("actor", workflow.Actor{
			ID:   user.ID,
			Name: user.Name,
			Role: rbac.Role(user.Role),
		})

		return c.Next()
	}
}

// ActorFromCtx mengambil actor yang diset middleware Auth.
func ActorFromCtx(c *fiber.Ctx) (workflow.Actor, bool) {
	actor, ok := c.Locals("actor").(workflow.Actor)
	return actor, ok
}
