package handler

import (
	"time"

	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo        repository.BerkasRepository
	riwayatRepo repository.RiwayatRepository
}

func NewDashboardHandler(repo repository.BerkasRepository, riwayatRepo repository.RiwayatRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo, riwayatRepo: riwayatRepo}
}

// GetStats menghitung ringkasan dashboard: total berkas, jumlah per status,
// dan jumlah tunggakan. Statistik dihitung dari seluruh berkas, bukan
// halaman listing. Tunggakan dihitung dari riwayat saat query, tidak
// pernah tersimpan sebagai status.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	list, err := h.repo.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	ids := make([]uint, len(list))
	for i, b := range list {
		ids[i] = b.ID
	}
	lastByID, err := h.riwayatRepo.LastTimestamps(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat berkas"})
	}

	now := time.Now()
	perStatus := make(map[string]int)
	tunggakan := 0
	for _, b := range list {
		perStatus[b.StatusBerkas]++
		var lastAt *time.Time
		if ts, ok := lastByID[b.ID]; ok {
			lastAt = &ts
		}
		if workflow.IsOverdue(b.StatusBerkas, lastAt, now) {
			tunggakan++
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"total":     len(list),
			"perStatus": perStatus,
			"selesai":   perStatus[workflow.StatusSelesai],
			"proses":    len(list) - perStatus[workflow.StatusSelesai],
			"tunggakan": tunggakan,
		},
	})
}
