package workflow

import (
	"fmt"
	"strconv"

	"berkas-tanah-backend/internal/model"
)

// ApplyFields menulis nilai dari payload (yang sudah difilter) ke struct
// berkas. Hanya field yang ada di tabel section yang diterima; key lain
// diabaikan oleh FilterAllowed sebelum sampai ke sini.
func ApplyFields(b *model.Berkas, fields map[string]any) error {
	for key, value := range fields {
		if key == "biayaUkur" {
			f, err := toFloat(value)
			if err != nil {
				return fmt.Errorf("%w: biayaUkur harus angka", ErrValidation)
			}
			b.BiayaUkur = f
			continue
		}

		s, err := toString(value)
		if err != nil {
			return fmt.Errorf("%w: field %s harus teks", ErrValidation, key)
		}

		switch key {
		case "noBerkas":
			b.NoBerkas = s
		case "di302":
			b.DI302 = s
		case "tanggal302":
			b.Tanggal302 = s
		case "namaPemohon":
			b.NamaPemohon = s
		case "jenisPermohonan":
			b.JenisPermohonan = s
		case "statusTanah":
			b.StatusTanah = s
		case "keadaanTanah":
			b.KeadaanTanah = s
		case "kecamatan":
			b.Kecamatan = s
		case "desa":
			b.Desa = s
		case "luas":
			b.Luas = s
		case "luas302":
			b.Luas302 = s
		case "luasSU":
			b.LuasSU = s
		case "no305":
			b.No305 = s
		case "nib":
			b.NIB = s
		case "notaris":
			b.Notaris = s
		case "tanggalBerkas":
			b.TanggalBerkas = s
		case "keterangan":
			b.Keterangan = s
		case "koordinatorUkur":
			b.KoordinatorUkur = s
		case "nip":
			b.NIP = s
		case "suratTugasAn":
			b.SuratTugasAn = s
		case "petugasUkur":
			b.PetugasUkur = s
		case "noGu":
			b.NoGU = s
		case "noStpPersiapuanUkur":
			b.NoStpPersiapuanUkur = s
		case "tanggalStpPersiapuan":
			b.TanggalStpPersiapuan = s
		case "noStp":
			b.NoStp = s
		case "tanggalStp":
			b.TanggalStp = s
		case "posisiBerkasUkur":
			b.PosisiBerkasUkur = s
		case "petugasPemetaan":
			b.PetugasPemetaan = s
		case "posisiBerkasMetaan":
			b.PosisiBerkasMetaan = s
		case "keteranganPemetaan":
			b.KeteranganPemetaan = s
		}
	}
	return nil
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		// JSON angka untuk field teks (misal luas) tetap diterima.
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		return "", fmt.Errorf("tipe %T tidak didukung", v)
	}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case string:
		if x == "" {
			return 0, nil
		}
		return strconv.ParseFloat(x, 64)
	default:
		return 0, fmt.Errorf("tipe %T tidak didukung", v)
	}
}
