package handler

import (
	"berkas-tanah-backend/internal/reference"

	"github.com/gofiber/fiber/v2"
)

// ReferenceHandler menyajikan data acuan statis untuk form.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

func (h *ReferenceHandler) GetJenisPermohonan(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": reference.JenisPermohonan})
}

func (h *ReferenceHandler) GetKecamatan(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": reference.Kecamatan})
}

func (h *ReferenceHandler) GetDesa(c *fiber.Ctx) error {
	kecamatan := c.Query("kecamatan")
	if kecamatan == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parameter kecamatan wajib diisi"})
	}
	desa, ok := reference.DesaPerKecamatan[kecamatan]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kecamatan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"data": desa})
}
