package mailer

import (
	"fmt"
	"io"

	"github.com/mon-refugee/membership-api/internal/config"
	gomail "gopkg.in/gomail.v2"
)

// Attachment is one file attached to the delivery email.
type Attachment struct {
	Filename string
	Data     []byte
}

// Mailer sends the generated certificate to the applicant.
type Mailer interface {
	SendDocument(to, docURL string, attachments []Attachment) error
}

// SMTPMailer delivers over authenticated SMTP. Every message is copied
// to the fixed operator address from configuration.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	cc     string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
		cc:     cfg.MailCC,
	}
}

func (m *SMTPMailer) SendDocument(to, docURL string, attachments []Attachment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from, "Mon Refugee Organization"))
	msg.SetHeader("To", to)
	if m.cc != "" {
		msg.SetHeader("Cc", m.cc)
	}
	msg.SetHeader("Subject", "Your Membership Form PDF")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Attached is your membership form PDF. Thank you for your contribution. You can also view it online at %s", docURL))

	for _, att := range attachments {
		data := att.Data
		msg.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
