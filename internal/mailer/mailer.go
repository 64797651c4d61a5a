// Package mailer sends transactional mail (password resets).
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer sends mail through an SMTP relay.
type Mailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// Configured reports whether an SMTP relay is set up. Without one, reset
// mails are skipped and the token is only logged.
func (m Mailer) Configured() bool {
	return m.Host != "" && m.From != ""
}

// SendPasswordReset mails a password reset token to the user.
func (m Mailer) SendPasswordReset(to, token string) error {
	e := email.NewEmail()
	e.From = m.From
	e.To = []string{to}
	e.Subject = "Zelo Financeiro: redefinição de senha"
	e.Text = []byte(fmt.Sprintf(
		"Olá,\n\nRecebemos um pedido para redefinir a sua senha.\n"+
			"Use o código abaixo para escolher uma nova senha:\n\n%s\n\n"+
			"Se você não pediu a redefinição, ignore este e-mail.\n",
		token,
	))

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}

	return e.Send(addr, auth)
}
