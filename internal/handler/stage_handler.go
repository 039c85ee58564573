package handler

import (
	"errors"
	"time"

	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/notifier"
	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StageHandler menangani dua jalur perpindahan status: move-stage eksplisit
// dan keputusan QC.
type StageHandler struct {
	repo   repository.BerkasRepository
	notify notifier.Notifier
}

func NewStageHandler(repo repository.BerkasRepository, notify notifier.Notifier) *StageHandler {
	return &StageHandler{repo: repo, notify: notify}
}

type MoveStageRequest struct {
	Catatan    string `json:"catatan"`
	Diteruskan string `json:"diteruskan"`
}

// MoveStage memindahkan berkas satu tahap ke depan.
func (h *StageHandler) MoveStage(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)

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

	var req MoveStageRequest
	// Body opsional; tanpa body pun move-stage tetap jalan.
	_ = c.BodyParser(&req)

	statusLama, statusBaru, err := workflow.Advance(berkas)
	if err != nil {
		// Tahap terakhir: tidak ada mutasi, tidak ada entri riwayat.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Berkas sudah di stage terakhir (" + statusLama + ")",
		})
	}

	catatan := req.Catatan
	if catatan == "" {
		catatan = "Berkas diteruskan oleh " + string(actor.Role) + ": " + actor.Name
	}

	riwayat := model.RiwayatBerkas{
		StatusLama: statusLama,
		StatusBaru: statusBaru,
		Diterima:   actor.Name,
		Diteruskan: req.Diteruskan,
		Catatan:    catatan,
	}

	if err := h.repo.UpdateWithRiwayat(berkas, &riwayat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memindahkan stage berkas"})
	}

	return c.JSON(fiber.Map{
		"message": "Berkas berhasil dipindahkan dari " + statusLama + " ke " + statusBaru,
		"data":    berkas,
		"stage_progression": fiber.Map{
			"from": statusLama,
			"to":   statusBaru,
		},
	})
}

type QCRequest struct {
	QcType     string `json:"qcType"`
	QcStatus   string `json:"qcStatus"`
	Keterangan string `json:"keterangan"`
}

// SubmitQC menerapkan keputusan ACC/REVISI pada gerbang KKS atau KASI.
func (h *StageHandler) SubmitQC(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)

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

	var req QCRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	result, err := workflow.ApplyQC(berkas, req.QcType, req.QcStatus, req.Keterangan, actor, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrForbiddenAction):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error(), "kind": "forbidden"})
		case errors.Is(err, workflow.ErrWrongGateStage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "kind": "wrong_gate_stage"})
		case errors.Is(err, workflow.ErrGatePrerequisite):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "kind": "gate_prerequisite"})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "kind": "validation"})
		}
	}

	riwayat := model.RiwayatBerkas{
		StatusLama: result.StatusLama,
		StatusBaru: result.StatusBaru,
		Diterima:   actor.Name,
		Catatan:    result.Catatan,
	}

	if err := h.repo.UpdateWithRiwayat(berkas, &riwayat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan hasil QC"})
	}

	if req.QcStatus == workflow.DecisionRevisi {
		h.notify.NotifyRevisi(berkas, req.QcType, req.Keterangan, actor.Name)
	}

	return c.JSON(fiber.Map{
		"message":   "QC " + req.QcType + " " + req.QcStatus + " berhasil disubmit",
		"data":      berkas,
		"qcType":    req.QcType,
		"qcStatus":  req.QcStatus,
		"newStatus": result.StatusBaru,
	})
}
