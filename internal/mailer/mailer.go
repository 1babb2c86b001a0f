package mailer

import (
	"fmt"

	"financing-backend/config"

	"gopkg.in/gomail.v2"
)

// Kirim email selamat datang setelah registrasi berhasil.
// Tanpa SMTP_HOST, pengiriman email dilewati (untuk dev lokal dan test).
func SendWelcomeEmail(to, name string) error {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}

	body := fmt.Sprintf(`<p>Halo %s,</p>
<p>Akun Anda berhasil terdaftar di layanan pengajuan pembiayaan.</p>
<p>Silakan login untuk mulai membuat aplikasi pembiayaan.</p>`, name)

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("SMTP_FROM", config.GetEnv("SMTP_USER", "noreply@localhost")))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Selamat Datang di Layanan Pembiayaan")
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		host,
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASS", ""),
	)

	return d.DialAndSend(m)
}
