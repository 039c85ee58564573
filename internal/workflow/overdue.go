package workflow

import "time"

// OverdueAfter: berkas dianggap tunggakan jika statusnya tidak berubah
// selama 7 hari atau lebih.
const OverdueAfter = 7 * 24 * time.Hour

// IsOverdue menghitung label tunggakan saat query. lastRiwayat adalah waktu
// entri riwayat terakhir; nil berarti belum ada riwayat sama sekali, dan
// ketiadaan riwayat bukan bukti menunggak. Label ini tidak pernah disimpan
// kembali ke status berkas.
func IsOverdue(status string, lastRiwayat *time.Time, now time.Time) bool {
	if status == StatusSelesai {
		return false
	}
	if lastRiwayat == nil {
		return false
	}
	return now.Sub(*lastRiwayat) >= OverdueAfter
}
