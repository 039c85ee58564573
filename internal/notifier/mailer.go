package notifier

import (
	"fmt"
	"log"

	"berkas-tanah-backend/config"
	"berkas-tanah-backend/internal/model"

	gomail "gopkg.in/gomail.v2"
)

// Notifier memberi tahu operator saat sebuah berkas dikembalikan (REVISI)
// oleh QC. Pengiriman best-effort: kegagalan hanya dicatat di log dan tidak
// pernah menggagalkan mutasi berkas.
type Notifier interface {
	NotifyRevisi(berkas *model.Berkas, gate, keterangan, oleh string)
}

type mailNotifier struct {
	host string
	port int
	user string
	pass string
	from string
	to   string
}

// NewMailNotifier membaca konfigurasi SMTP dari environment. Jika SMTP_HOST
// kosong, notifikasi dimatikan (no-op).
func NewMailNotifier() Notifier {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return noopNotifier{}
	}
	return &mailNotifier{
		host: host,
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASS", ""),
		from: config.GetEnv("SMTP_FROM", "no-reply@kantah.go.id"),
		to:   config.GetEnv("SMTP_NOTIFY_TO", ""),
	}
}

func (n *mailNotifier) NotifyRevisi(berkas *model.Berkas, gate, keterangan, oleh string) {
	if n.to == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("REVISI QC %s - Berkas %s", gate, berkas.NoBerkas))
	m.SetBody("text/plain", fmt.Sprintf(
		"Berkas %s (%s) dikembalikan oleh %s pada gerbang %s.\n\nCatatan: %s\n",
		berkas.NoBerkas, berkas.NamaPemohon, oleh, gate, keterangan,
	))

	d := gomail.NewDialer(n.host, n.port, n.user, n.pass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Gagal mengirim notifikasi REVISI untuk berkas %s: %v", berkas.NoBerkas, err)
	}
}

type noopNotifier struct{}

func (noopNotifier) NotifyRevisi(*model.Berkas, string, string, string) {}
