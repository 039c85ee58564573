package handler

import (
	"errors"

	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
	repo    repository.UserRepository
}

func NewUserHandler(u *usecase.UserUsecase, repo repository.UserRepository) *UserHandler {
	return &UserHandler{usecase: u, repo: repo}
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email dan password diperlukan"})
	}

	token, user, err := h.usecase.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNonaktif) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email atau password salah"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Session mengembalikan profil user dari token yang sedang dipakai.
func (h *UserHandler) Session(c *fiber.Ctx) error {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Autentikasi diperlukan"})
	}
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":          actor.ID,
			"name":        actor.Name,
			"role":        actor.Role,
			"roleDisplay": rbac.DisplayName[actor.Role],
		},
	})
}

// GetAll mengembalikan daftar user (khusus ADMIN, dijaga middleware Role).
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.repo.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama, email, dan password wajib diisi"})
	}
	if !rbac.ValidRole(rbac.Role(input.Role)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role tidak dikenal"})
	}

	user, err := h.usecase.Register(input.Name, input.Email, input.Password, rbac.Role(input.Role))
	if err != nil {
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User berhasil dibuat",
		"data":    user,
	})
}

// Update mengganti nama/role/status aktif user. User tidak pernah dihapus
// dari database; penonaktifan memutus aksesnya.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID user tidak valid"})
	}

	user, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	var input struct {
		Name  *string `json:"name"`
		Role  *string `json:"role"`
		Aktif *bool   `json:"aktif"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !rbac.ValidRole(rbac.Role(*input.Role)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role tidak dikenal"})
		}
		user.Role = *input.Role
	}
	if input.Aktif != nil {
		user.Aktif = *input.Aktif
	}

	if err := h.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui user"})
	}

	return c.JSON(fiber.Map{
		"message": "User berhasil diperbarui",
		"data":    user,
	})
}
