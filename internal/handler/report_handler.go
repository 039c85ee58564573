package handler

import (
	"errors"
	"time"

	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportHandler menyediakan data cetak satu berkas lengkap dengan riwayat
// perjalanannya (aksi print pada tabel permission).
type ReportHandler struct {
	repo        repository.BerkasRepository
	riwayatRepo repository.RiwayatRepository
}

func NewReportHandler(repo repository.BerkasRepository, riwayatRepo repository.RiwayatRepository) *ReportHandler {
	return &ReportHandler{repo: repo, riwayatRepo: riwayatRepo}
}

// PrintBerkas mengembalikan payload siap cetak: data berkas, riwayat urut
// waktu, dan stempel waktu cetak.
func (h *ReportHandler) PrintBerkas(c *fiber.Ctx) error {
	id, err := parseBerkasID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID berkas tidak valid"})
	}

	berkas, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Berkas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data berkas"})
	}

	riwayat, err := h.riwayatRepo.ListByBerkasID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat berkas"})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"berkas":         berkas,
			"riwayat":        riwayat,
			"statusLabel":    workflow.StatusLabel(berkas.StatusBerkas),
			"dicetakTanggal": time.Now().Format("2006-01-02 15:04"),
		},
	})
}
