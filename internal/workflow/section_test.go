package workflow

import (
	"testing"

	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
		want   []rbac.Section
	}{
		{
			name:   "satu section",
			fields: []string{"noBerkas", "namaPemohon"},
			want:   []rbac.Section{rbac.SectionDataBerkas},
		},
		{
			name:   "dua section",
			fields: []string{"koordinatorUkur", "keterangan"},
			want:   []rbac.Section{rbac.SectionDataBerkas, rbac.SectionDataUkur},
		},
		{
			name:   "tiga section",
			fields: []string{"petugasPemetaan", "petugasUkur", "luas"},
			want:   []rbac.Section{rbac.SectionDataBerkas, rbac.SectionDataUkur, rbac.SectionDataPemetaan},
		},
		{
			name:   "field tak dikenal diabaikan",
			fields: []string{"petugasUkur", "fieldAneh"},
			want:   []rbac.Section{rbac.SectionDataUkur},
		},
		{
			name:   "tidak ada field cocok default DATA_BERKAS",
			fields: []string{"fieldAneh", "lainnya"},
			want:   []rbac.Section{rbac.SectionDataBerkas},
		},
		{
			name:   "payload kosong default DATA_BERKAS",
			fields: nil,
			want:   []rbac.Section{rbac.SectionDataBerkas},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.fields)
			if len(got) != len(tc.want) {
				t.Fatalf("Classify(%v) = %v, want %v", tc.fields, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Classify(%v) = %v, want %v", tc.fields, got, tc.want)
				}
			}
		})
	}
}

func TestFilterAllowedStripsForeignSections(t *testing.T) {
	payload := map[string]any{
		"noBerkas":        "B-1",
		"petugasUkur":     "Budi", // DATA_UKUR, di luar izin DATA_BERKAS
		"petugasPemetaan": "Sari", // DATA_PEMETAAN, di luar izin
		"fieldAneh":       "x",    // tak dikenal, selalu dibuang
	}

	filtered := FilterAllowed(payload, rbac.RoleDataBerkas)

	if _, ok := filtered["noBerkas"]; !ok {
		t.Error("field noBerkas seharusnya lolos filter untuk role DATA_BERKAS")
	}
	for _, key := range []string{"petugasUkur", "petugasPemetaan", "fieldAneh"} {
		if _, ok := filtered[key]; ok {
			t.Errorf("field %s seharusnya terbuang dari payload", key)
		}
	}
}

// Urutan filter-dulu-baru-klasifikasi: payload berisi field terlarang tidak
// membuat request ditolak, field itu hanya tidak pernah sampai ke storage.
func TestFilterThenClassifyNeverRejectsForStrippedFields(t *testing.T) {
	payload := map[string]any{
		"keterangan":  "catatan",
		"petugasUkur": "Budi",
	}

	filtered := FilterAllowed(payload, rbac.RoleDataBerkas)
	keys := make([]string, 0, len(filtered))
	for k := range filtered {
		keys = append(keys, k)
	}
	sections := Classify(keys)

	for _, s := range sections {
		if !rbac.CanEditSection(rbac.RoleDataBerkas, s) {
			t.Fatalf("klasifikasi setelah filter menghasilkan section terlarang %s", s)
		}
	}
}

func TestFilterAllowedAdminKeepsEverythingKnown(t *testing.T) {
	payload := map[string]any{
		"noBerkas":        "B-1",
		"petugasUkur":     "Budi",
		"petugasPemetaan": "Sari",
		"fieldAneh":       "x",
	}
	filtered := FilterAllowed(payload, rbac.RoleAdmin)
	if len(filtered) != 3 {
		t.Fatalf("filter ADMIN = %v, want 3 field dikenal", filtered)
	}
}

func TestIsSectionComplete(t *testing.T) {
	b := &model.Berkas{
		NoBerkas:        "B-1",
		NamaPemohon:     "Ani",
		JenisPermohonan: "Ukur PB",
	}
	if IsSectionComplete(b, rbac.SectionDataBerkas) {
		t.Error("DATA_BERKAS belum lengkap tanpa statusTanah")
	}

	b.StatusTanah = "Milik"
	if !IsSectionComplete(b, rbac.SectionDataBerkas) {
		t.Error("DATA_BERKAS seharusnya lengkap")
	}

	if IsSectionComplete(b, rbac.SectionDataUkur) {
		t.Error("DATA_UKUR belum lengkap")
	}
	b.KoordinatorUkur = "Koord"
	b.PetugasUkur = "Budi"
	if !IsSectionComplete(b, rbac.SectionDataUkur) {
		t.Error("DATA_UKUR seharusnya lengkap")
	}

	if IsSectionComplete(b, rbac.SectionDataPemetaan) {
		t.Error("DATA_PEMETAAN belum lengkap")
	}
	b.PetugasPemetaan = "Sari"
	if !IsSectionComplete(b, rbac.SectionDataPemetaan) {
		t.Error("DATA_PEMETAAN seharusnya lengkap")
	}

	if IsSectionComplete(b, rbac.Section("LAINNYA")) {
		t.Error("section tak dikenal tidak pernah lengkap")
	}
}
