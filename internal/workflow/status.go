package workflow

import (
	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"
)

// Status tahapan berkas, urutan maju tetap.
const (
	StatusDataBerkas = "DATA_BERKAS"
	StatusDataUkur   = "DATA_UKUR"
	StatusPemetaan   = "PEMETAAN"
	StatusKKS        = "KKS"
	StatusKASI       = "KASI"
	StatusSelesai    = "SELESAI"

	// StatusDeleted hanya muncul sebagai statusBaru di riwayat saat berkas dihapus.
	StatusDeleted = "DELETED"

	// StatusNew hanya muncul sebagai statusLama di riwayat saat berkas dibuat.
	StatusNew = "NEW"
)

// stageProgression: penerus setiap status. SELESAI tidak punya penerus.
var stageProgression = map[string]string{
	StatusDataBerkas: StatusDataUkur,
	StatusDataUkur:   StatusPemetaan,
	StatusPemetaan:   StatusKKS,
	StatusKKS:        StatusKASI,
	StatusKASI:       StatusSelesai,
}

// stageOrder dipakai untuk membandingkan posisi dua status.
var stageOrder = map[string]int{
	StatusDataBerkas: 0,
	StatusDataUkur:   1,
	StatusPemetaan:   2,
	StatusKKS:        3,
	StatusKASI:       4,
	StatusSelesai:    5,
}

// statusLabels untuk tampilan dan hasil cetak.
var statusLabels = map[string]string{
	StatusDataBerkas: "Data Berkas",
	StatusDataUkur:   "Data Ukur",
	StatusPemetaan:   "Pemetaan",
	StatusKKS:        "KKS",
	StatusKASI:       "KASI",
	StatusSelesai:    "Selesai",
}

// StatusLabel mengembalikan label tampilan sebuah status.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// NextStage mengembalikan status penerus, atau "" jika sudah tahap terakhir.
func NextStage(status string) string {
	return stageProgression[status]
}

// ResolveStatus menghitung status yang seharusnya berdasarkan kelengkapan
// section, dicek berurutan DATA_BERKAS -> DATA_UKUR -> DATA_PEMETAAN.
// Section pertama yang belum lengkap menjadi target; jika semua lengkap,
// berkas siap masuk QC (KKS).
func ResolveStatus(b *model.Berkas) string {
	if !IsSectionComplete(b, rbac.SectionDataBerkas) {
		return StatusDataBerkas
	}
	if !IsSectionComplete(b, rbac.SectionDataUkur) {
		return StatusDataUkur
	}
	if !IsSectionComplete(b, rbac.SectionDataPemetaan) {
		return StatusPemetaan
	}
	return StatusKKS
}

// AdvanceOnEdit menghitung status baru setelah edit field. Status hanya
// boleh maju: kalau hasil hitung ada di belakang status tersimpan (misal
// berkas sedang parkir di KKS/KASI dan section lama diedit ulang), status
// tersimpan dipertahankan.
func AdvanceOnEdit(current string, b *model.Berkas) string {
	resolved := ResolveStatus(b)
	if stageOrder[resolved] > stageOrder[current] {
		return resolved
	}
	return current
}

// Advance memindahkan berkas satu tahap ke depan (aksi move-stage eksplisit).
// Mengembalikan status lama dan baru; ErrTerminalState jika sudah SELESAI.
func Advance(b *model.Berkas) (statusLama, statusBaru string, err error) {
	statusLama = b.StatusBerkas
	statusBaru = NextStage(statusLama)
	if statusBaru == "" {
		return statusLama, "", ErrTerminalState
	}
	b.StatusBerkas = statusBaru
	return statusLama, statusBaru, nil
}
