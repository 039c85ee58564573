package workflow

import (
	"fmt"
	"time"

	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"
)

// Gerbang QC dan nilai keputusannya.
const (
	GateKKS  = "KKS"
	GateKASI = "KASI"

	DecisionACC    = "ACC"
	DecisionRevisi = "REVISI"
)

// QCResult merangkum efek satu keputusan QC untuk dicatat di riwayat.
type QCResult struct {
	StatusLama string
	StatusBaru string
	Catatan    string
}

// ApplyQC menerapkan keputusan QC pada berkas. Aturan:
//   - hanya ADMIN dan QUALITY_CONTROL yang boleh,
//   - berkas harus sedang parkir tepat di gerbang yang diputus,
//   - KASI mensyaratkan keputusan KKS terakhir ACC,
//   - REVISI wajib ada keterangan dan tidak mengubah status (berkas tetap
//     parkir supaya QC bisa diulang setelah perbaikan),
//   - ACC memajukan status ke penerus gerbang.
//
// Sub-record gerbang selalu ditimpa dengan keputusan terbaru; jejak
// keputusan sebelumnya hidup di riwayat.
func ApplyQC(b *model.Berkas, gate, decision, keterangan string, actor Actor, now time.Time) (QCResult, error) {
	if actor.Role != rbac.RoleAdmin && actor.Role != rbac.RoleQualityControl {
		return QCResult{}, fmt.Errorf("%w: hanya ADMIN dan QUALITY_CONTROL yang boleh submit QC", ErrForbiddenAction)
	}

	if gate != GateKKS && gate != GateKASI {
		return QCResult{}, fmt.Errorf("%w: QC type harus KKS atau KASI", ErrValidation)
	}
	if decision != DecisionACC && decision != DecisionRevisi {
		return QCResult{}, fmt.Errorf("%w: QC status harus ACC atau REVISI", ErrValidation)
	}
	if decision == DecisionRevisi && keterangan == "" {
		return QCResult{}, fmt.Errorf("%w: keterangan wajib diisi untuk REVISI", ErrValidation)
	}

	statusLama := b.StatusBerkas
	if statusLama != gate {
		return QCResult{}, fmt.Errorf("%w: berkas harus berada di stage %s, status saat ini %s",
			ErrWrongGateStage, gate, statusLama)
	}
	if gate == GateKASI && b.QcKksStatus != DecisionACC {
		return QCResult{}, ErrGatePrerequisite
	}

	statusBaru := statusLama
	if decision == DecisionACC {
		statusBaru = NextStage(statusLama)
	}
	b.StatusBerkas = statusBaru

	switch gate {
	case GateKKS:
		b.QcKksStatus = decision
		b.QcKksKeterangan = keterangan
		b.QcKksOleh = actor.Name
		b.QcKksTanggal = &now
	case GateKASI:
		b.QcKasiStatus = decision
		b.QcKasiKeterangan = keterangan
		b.QcKasiOleh = actor.Name
		b.QcKasiTanggal = &now
	}

	catatan := fmt.Sprintf("QC %s %s oleh %s", gate, decision, actor.Name)
	if keterangan != "" {
		catatan += ": " + keterangan
	}

	return QCResult{StatusLama: statusLama, StatusBaru: statusBaru, Catatan: catatan}, nil
}
