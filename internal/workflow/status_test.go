package workflow

import (
	"errors"
	"testing"

	"berkas-tanah-backend/internal/model"
)

func lengkapSemua() *model.Berkas {
	return &model.Berkas{
		NoBerkas:        "B-1",
		NamaPemohon:     "Ani",
		JenisPermohonan: "Ukur PB",
		StatusTanah:     "Milik",
		KoordinatorUkur: "Koord",
		PetugasUkur:     "Budi",
		PetugasPemetaan: "Sari",
	}
}

func TestResolveStatus(t *testing.T) {
	b := &model.Berkas{NoBerkas: "B-1", NamaPemohon: "Ani", JenisPermohonan: "Ukur PB"}
	if got := ResolveStatus(b); got != StatusDataBerkas {
		t.Fatalf("tanpa statusTanah: ResolveStatus = %s, want DATA_BERKAS", got)
	}

	b.StatusTanah = "Milik"
	if got := ResolveStatus(b); got != StatusDataUkur {
		t.Fatalf("DATA_BERKAS lengkap: ResolveStatus = %s, want DATA_UKUR", got)
	}

	b.KoordinatorUkur = "Koord"
	b.PetugasUkur = "Budi"
	if got := ResolveStatus(b); got != StatusPemetaan {
		t.Fatalf("DATA_UKUR lengkap: ResolveStatus = %s, want PEMETAAN", got)
	}

	b.PetugasPemetaan = "Sari"
	if got := ResolveStatus(b); got != StatusKKS {
		t.Fatalf("semua lengkap: ResolveStatus = %s, want KKS", got)
	}
}

// ResolveStatus deterministik dan menambah field tidak pernah memundurkan
// hasil hitung.
func TestResolveStatusMonotonic(t *testing.T) {
	b := &model.Berkas{}
	prev := stageOrder[ResolveStatus(b)]

	steps := []func(){
		func() { b.NoBerkas = "B-1" },
		func() { b.NamaPemohon = "Ani" },
		func() { b.JenisPermohonan = "Ukur PB" },
		func() { b.StatusTanah = "Milik" },
		func() { b.KoordinatorUkur = "Koord" },
		func() { b.PetugasUkur = "Budi" },
		func() { b.PetugasPemetaan = "Sari" },
	}
	for i, step := range steps {
		step()
		first := ResolveStatus(b)
		if again := ResolveStatus(b); again != first {
			t.Fatalf("langkah %d: hasil tidak stabil (%s lalu %s)", i, first, again)
		}
		cur := stageOrder[first]
		if cur < prev {
			t.Fatalf("langkah %d: status mundur dari urutan %d ke %d", i, prev, cur)
		}
		prev = cur
	}
}

func TestAdvanceOnEditForwardOnly(t *testing.T) {
	b := lengkapSemua()

	// Berkas parkir di KASI; semua section lengkap menghitung KKS —
	// edit tidak boleh menariknya mundur.
	if got := AdvanceOnEdit(StatusKASI, b); got != StatusKASI {
		t.Fatalf("AdvanceOnEdit dari KASI = %s, want tetap KASI", got)
	}

	// Berkas di DATA_BERKAS dengan semua section lengkap maju ke KKS.
	if got := AdvanceOnEdit(StatusDataBerkas, b); got != StatusKKS {
		t.Fatalf("AdvanceOnEdit dari DATA_BERKAS = %s, want KKS", got)
	}

	// Berkas baru tanpa statusTanah bertahan di DATA_BERKAS,
	// lalu maju ke DATA_UKUR begitu statusTanah terisi.
	c := &model.Berkas{NoBerkas: "B-1", NamaPemohon: "Ani", JenisPermohonan: "Ukur PB"}
	if got := AdvanceOnEdit(StatusDataBerkas, c); got != StatusDataBerkas {
		t.Fatalf("sebelum statusTanah: %s, want DATA_BERKAS", got)
	}
	c.StatusTanah = "Milik"
	if got := AdvanceOnEdit(StatusDataBerkas, c); got != StatusDataUkur {
		t.Fatalf("setelah statusTanah: %s, want DATA_UKUR", got)
	}
}

func TestAdvanceProgression(t *testing.T) {
	b := &model.Berkas{StatusBerkas: StatusDataBerkas}
	want := []string{StatusDataUkur, StatusPemetaan, StatusKKS, StatusKASI, StatusSelesai}
	for _, next := range want {
		lama := b.StatusBerkas
		gotLama, gotBaru, err := Advance(b)
		if err != nil {
			t.Fatalf("Advance dari %s: %v", lama, err)
		}
		if gotLama != lama || gotBaru != next || b.StatusBerkas != next {
			t.Fatalf("Advance dari %s = (%s, %s), want (%s, %s)", lama, gotLama, gotBaru, lama, next)
		}
	}
}

func TestAdvanceTerminal(t *testing.T) {
	b := &model.Berkas{StatusBerkas: StatusSelesai}
	// Berulang kali pun hasilnya sama dan berkas tidak berubah.
	for i := 0; i < 3; i++ {
		_, _, err := Advance(b)
		if !errors.Is(err, ErrTerminalState) {
			t.Fatalf("Advance pada SELESAI: err = %v, want ErrTerminalState", err)
		}
		if b.StatusBerkas != StatusSelesai {
			t.Fatalf("status berubah menjadi %s", b.StatusBerkas)
		}
	}
}

func TestApplyFields(t *testing.T) {
	b := &model.Berkas{}
	err := ApplyFields(b, map[string]any{
		"noBerkas":  "B-7",
		"biayaUkur": "250000.5",
		"luas":      float64(120),
	})
	if err != nil {
		t.Fatalf("ApplyFields: %v", err)
	}
	if b.NoBerkas != "B-7" {
		t.Errorf("NoBerkas = %q", b.NoBerkas)
	}
	if b.BiayaUkur != 250000.5 {
		t.Errorf("BiayaUkur = %v", b.BiayaUkur)
	}
	if b.Luas != "120" {
		t.Errorf("Luas = %q", b.Luas)
	}

	if err := ApplyFields(b, map[string]any{"biayaUkur": "bukan-angka"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("biayaUkur non-angka: err = %v, want ErrValidation", err)
	}
}
