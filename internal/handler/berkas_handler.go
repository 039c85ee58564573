package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"berkas-tanah-backend/internal/middleware"
	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"
	"berkas-tanah-backend/internal/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// listLimit membatasi listing berkas terbaru, mencegah data dump.
const listLimit = 100

type BerkasHandler struct {
	repo        repository.BerkasRepository
	riwayatRepo repository.RiwayatRepository
}

func NewBerkasHandler(repo repository.BerkasRepository, riwayatRepo repository.RiwayatRepository) *BerkasHandler {
	return &BerkasHandler{repo: repo, riwayatRepo: riwayatRepo}
}

func parseBerkasID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Create membuat berkas baru di status DATA_BERKAS. Payload creator
// non-admin difilter dulu ke section yang boleh ia edit, sehingga field di
// luar izin tidak pernah sampai ke storage.
func (h *BerkasHandler) Create(c *fiber.Ctx) error {
	actor, _ := middleware.ActorFromCtx(c)

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	filtered := workflow.FilterAllowed(body, actor.Role)

	berkas := model.Berkas{StatusBerkas: workflow.StatusDataBerkas}
	if err := workflow.ApplyFields(&berkas, filtered); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Cek field wajib setelah konversi nilai, supaya payload dengan tipe
	// JSON non-string yang masih bisa dikonversi tidak dianggap kosong.
	var missing []string
	for _, req := range []struct {
		field string
		value string
	}{
		{"noBerkas", berkas.NoBerkas},
		{"namaPemohon", berkas.NamaPemohon},
		{"jenisPermohonan", berkas.JenisPermohonan},
	} {
		if req.value == "" {
			missing = append(missing, req.field)
		}
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Field wajib belum diisi",
			"missing": missing,
		})
	}
	if berkas.TanggalBerkas == "" {
		berkas.TanggalBerkas = time.Now().Format("2006-01-02")
	}

	riwayat := model.RiwayatBerkas{
		StatusLama: workflow.StatusNew,
		StatusBaru: workflow.StatusDataBerkas,
		Diterima:   actor.Name,
		Catatan:    fmt.Sprintf("Berkas dibuat oleh %s: %s", actor.Role, actor.Name),
	}

	if err := h.repo.CreateWithRiwayat(&berkas, &riwayat); err != nil {
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nomor berkas sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat berkas"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Berkas berhasil dibuat",
		"data":    berkas,
	})
}

// List mengembalikan berkas terbaru, masing-masing dengan label tunggakan
// yang dihitung ulang dari riwayat pada saat query.
func (h *BerkasHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.List(listLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data berkas"})
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
	items := make([]fiber.Map, len(list))
	for i, b := range list {
		var lastAt *time.Time
		if ts, ok := lastByID[b.ID]; ok {
			lastAt = &ts
		}
		items[i] = fiber.Map{
			"berkas":    b,
			"tunggakan": workflow.IsOverdue(b.StatusBerkas, lastAt, now),
		}
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar berkas",
		"data":    items,
		"count":   len(items),
	})
}

// Detail mengembalikan satu berkas beserta riwayat dan label tunggakannya.
func (h *BerkasHandler) Detail(c *fiber.Ctx) error {
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

	var lastAt *time.Time
	if len(riwayat) > 0 {
		ts := riwayat[len(riwayat)-1].CreatedAt
		lastAt = &ts
	}

	return c.JSON(fiber.Map{
		"data":      berkas,
		"riwayat":   riwayat,
		"tunggakan": workflow.IsOverdue(berkas.StatusBerkas, lastAt, time.Now()),
	})
}

// Edit memperbarui field berkas. Urutan: filter payload sesuai izin role,
// klasifikasi ulang hasil filter, cek izin per section, terapkan, lalu
// hitung auto-advance (hanya maju). Berkas SELESAI tidak bisa diedit.
func (h *BerkasHandler) Edit(c *fiber.Ctx) error {
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

	if berkas.StatusBerkas == workflow.StatusSelesai {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Berkas yang sudah selesai tidak dapat diedit"})
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	filtered := workflow.FilterAllowed(body, actor.Role)

	keys := make([]string, 0, len(filtered))
	for k := range filtered {
		keys = append(keys, k)
	}
	sections := workflow.Classify(keys)

	// Setelah filter, klasifikasi hanya bisa jatuh ke section terlarang
	// lewat default DATA_BERKAS pada payload yang tak menyisakan field.
	var sectionNames []string
	for _, section := range sections {
		if !rbac.CanEditSection(actor.Role, section) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fmt.Sprintf("Role %s tidak boleh mengedit section %s", actor.Role, section),
			})
		}
		sectionNames = append(sectionNames, string(section))
	}

	statusLama := berkas.StatusBerkas
	if err := workflow.ApplyFields(berkas, filtered); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	berkas.StatusBerkas = workflow.AdvanceOnEdit(statusLama, berkas)

	riwayat := model.RiwayatBerkas{
		StatusLama: statusLama,
		StatusBaru: berkas.StatusBerkas,
		Diterima:   actor.Name,
		Catatan: fmt.Sprintf("Berkas diedit oleh %s: %s. Section: %s",
			actor.Role, actor.Name, strings.Join(sectionNames, ", ")),
	}

	if err := h.repo.UpdateWithRiwayat(berkas, &riwayat); err != nil {
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nomor berkas sudah terdaftar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memperbarui berkas"})
	}

	return c.JSON(fiber.Map{
		"message":         "Berkas berhasil diperbarui",
		"data":            berkas,
		"edited_sections": sectionNames,
	})
}

// Delete menghapus berkas yang belum SELESAI dan mencatat entri riwayat
// terakhir sebelum penghapusan.
func (h *BerkasHandler) Delete(c *fiber.Ctx) error {
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

	if berkas.StatusBerkas == workflow.StatusSelesai {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Berkas yang sudah selesai tidak dapat dihapus"})
	}

	riwayat := model.RiwayatBerkas{
		StatusLama: berkas.StatusBerkas,
		StatusBaru: workflow.StatusDeleted,
		Diterima:   actor.Name,
		Catatan:    fmt.Sprintf("Berkas dihapus oleh %s: %s", actor.Role, actor.Name),
	}

	if err := h.repo.DeleteWithRiwayat(berkas, &riwayat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus berkas"})
	}

	return c.JSON(fiber.Map{
		"message":    "Berkas berhasil dihapus",
		"deleted_id": id,
	})
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "Error 1062")
}
