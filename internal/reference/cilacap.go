package reference

// Data acuan wilayah kerja Kantor Pertanahan Kabupaten Cilacap.
// Dipakai untuk dropdown form; bukan bagian dari logika workflow.

var JenisPermohonan = []string{
	"Ukur PB",
	"Pemecahan",
	"Penggabungan",
	"Pemisahan",
	"Penataan Batas",
	"Pengembalian Batas",
	"Ukur Ulang",
}

var Kecamatan = []string{
	"Kedungreja",
	"Kesugihan",
	"Adipala",
	"Binangun",
	"Nusawungu",
	"Kroya",
	"Maos",
	"Jeruklegi",
	"Kawunganten",
	"Gandrungmangu",
	"Sidareja",
	"Karangpucung",
	"Cimanggu",
	"Majenang",
	"Wanareja",
	"Dayeuhluhur",
	"Cipari",
	"Sampang",
	"Patimuan",
	"Bantarsari",
	"Cilacap Selatan",
	"Cilacap Tengah",
	"Cilacap Utara",
	"Kampung Laut",
}

// DesaPerKecamatan: daftar desa/kelurahan per kecamatan. Kecamatan dengan
// slice kosong datanya masih dalam verifikasi.
var DesaPerKecamatan = map[string][]string{
	"Kroya":           {"Ayamalas", "Bajing", "Bajing Kulon", "Buntu", "Gentasari", "Karangmangu", "Karangturi", "Kedawung", "Kroya", "Mergawati", "Mujur", "Mujur Lor", "Pekuncen", "Pesanggrahan", "Pucung Kidul", "Pucung Lor", "Sikampuh"},
	"Maos":            {"Glempang", "Kalijaran", "Karangkemiri", "Karangreja", "Karangrena", "Klapagada", "Maos Kidul", "Maos Lor", "Mernek", "Panisihan"},
	"Sidareja":        {"Gunungreja", "Karanggedang", "Kunci", "Margasari", "Penyarang", "Sidamulya", "Sidareja", "Sudagaran", "Tegalsari", "Tinggarjaya"},
	"Sampang":         {"Brani", "Karangasem", "Karangjati", "Karangtengah", "Ketanggung", "Nusajati", "Paberasan", "Paketingan", "Sampang", "Sidasari"},
	"Cilacap Selatan": {"Cilacap", "Sidakaya", "Tambakreja", "Tegalkamulyan", "Tegalrejo"},
	"Cilacap Tengah":  {"Donan", "Gunungsimping", "Kutawaru", "Lomanis", "Sidanegara"},
	"Cilacap Utara":   {"Gumilir", "Karangtalun", "Kebonmanis", "Mertasinga", "Tritih Kulon"},
	"Majenang":        {},
	"Wanareja":        {},
	"Dayeuhluhur":     {},
	"Cipari":          {},
	"Patimuan":        {},
	"Bantarsari":      {},
	"Kampung Laut":    {},
}
