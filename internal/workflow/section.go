package workflow

import (
	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"
)

// sectionFields memetakan setiap field berkas (nama JSON) ke section pemiliknya.
var sectionFields = map[rbac.Section][]string{
	rbac.SectionDataBerkas: {
		"noBerkas",
		"di302",
		"tanggal302",
		"namaPemohon",
		"jenisPermohonan",
		"statusTanah",
		"keadaanTanah",
		"kecamatan",
		"desa",
		"luas",
		"luas302",
		"luasSU",
		"no305",
		"nib",
		"notaris",
		"biayaUkur",
		"tanggalBerkas",
		"keterangan",
	},
	rbac.SectionDataUkur: {
		"koordinatorUkur",
		"nip",
		"suratTugasAn",
		"petugasUkur",
		"noGu",
		"noStpPersiapuanUkur",
		"tanggalStpPersiapuan",
		"noStp",
		"tanggalStp",
		"posisiBerkasUkur",
	},
	rbac.SectionDataPemetaan: {
		"petugasPemetaan",
		"posisiBerkasMetaan",
		"keteranganPemetaan",
	},
}

// fieldSection adalah kebalikan sectionFields untuk lookup per field.
var fieldSection = func() map[string]rbac.Section {
	m := make(map[string]rbac.Section)
	for section, fields := range sectionFields {
		for _, f := range fields {
			m[f] = section
		}
	}
	return m
}()

// SectionOf mengembalikan section pemilik sebuah field. Field yang tidak
// dikenal tidak termasuk section manapun.
func SectionOf(field string) (rbac.Section, bool) {
	s, ok := fieldSection[field]
	return s, ok
}

// Classify menentukan section mana saja yang disentuh oleh kumpulan field.
// Field tak dikenal diabaikan. Jika tidak ada field yang cocok sama sekali,
// default ke DATA_BERKAS.
func Classify(fields []string) []rbac.Section {
	seen := make(map[rbac.Section]bool)
	var out []rbac.Section
	// Urutan hasil mengikuti urutan section, bukan urutan field,
	// supaya pesan error dan catatan riwayat stabil.
	for _, section := range rbac.AllSections {
		for _, f := range fields {
			if s, ok := SectionOf(f); ok && s == section && !seen[section] {
				seen[section] = true
				out = append(out, section)
			}
		}
	}
	if len(out) == 0 {
		return []rbac.Section{rbac.SectionDataBerkas}
	}
	return out
}

// FilterAllowed membuang field yang berada di luar section yang boleh diedit
// role, sebelum klasifikasi dipakai untuk keputusan otorisasi. Dengan urutan
// filter-dulu-baru-klasifikasi, request tidak pernah ditolak karena field
// yang memang tidak boleh ia kirim, dan field di luar izin tidak pernah
// sampai ke storage.
func FilterAllowed(payload map[string]any, role rbac.Role) map[string]any {
	filtered := make(map[string]any)
	for key, value := range payload {
		section, ok := SectionOf(key)
		if !ok {
			continue
		}
		if rbac.CanEditSection(role, section) {
			filtered[key] = value
		}
	}
	return filtered
}

// IsSectionComplete mengecek kelengkapan field wajib sebuah section.
func IsSectionComplete(b *model.Berkas, section rbac.Section) bool {
	switch section {
	case rbac.SectionDataBerkas:
		// Field wajib: noBerkas, namaPemohon, jenisPermohonan, statusTanah
		return b.NoBerkas != "" && b.NamaPemohon != "" && b.JenisPermohonan != "" && b.StatusTanah != ""
	case rbac.SectionDataUkur:
		// Field wajib: koordinatorUkur, petugasUkur
		return b.KoordinatorUkur != "" && b.PetugasUkur != ""
	case rbac.SectionDataPemetaan:
		// Field wajib: petugasPemetaan
		return b.PetugasPemetaan != ""
	default:
		return false
	}
}
