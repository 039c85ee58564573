package workflow

import "errors"

// Kategori error yang harus bisa dibedakan oleh handler saat memetakan
// ke response HTTP. Cek dengan errors.Is.
var (
	// ErrTerminalState: berkas sudah SELESAI, tidak bisa diedit/dihapus/dipindah.
	ErrTerminalState = errors.New("berkas sudah selesai")

	// ErrWrongGateStage: keputusan QC diajukan untuk gerbang yang bukan
	// posisi berkas saat ini.
	ErrWrongGateStage = errors.New("berkas tidak berada di stage gerbang QC ini")

	// ErrGatePrerequisite: QC KASI diajukan sebelum QC KKS berstatus ACC.
	ErrGatePrerequisite = errors.New("QC KKS harus ACC sebelum QC KASI")

	// ErrForbiddenAction: role tidak punya izin untuk aksi ini.
	ErrForbiddenAction = errors.New("role tidak memiliki izin untuk aksi ini")

	// ErrForbiddenSection: payload menyentuh section di luar izin role.
	ErrForbiddenSection = errors.New("role tidak memiliki izin untuk section ini")

	// ErrValidation: input tidak valid (field wajib kosong, nilai keputusan
	// tidak dikenal, REVISI tanpa keterangan).
	ErrValidation = errors.New("data tidak valid")
)
