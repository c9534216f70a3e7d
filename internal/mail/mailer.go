// Package mail is the transactional email collaborator. Missing SMTP
// configuration degrades to a no-op that still reports a structured
// result, so callers never need a nil check or a panic recovery.
package mail

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	mail "github.com/xhit/go-simple-mail/v2"
)

type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	UseTLS      bool
	InsecureTLS bool
}

// Enabled reports whether enough configuration exists to reach a server.
func (config Config) Enabled() bool {
	return config.Host != "" && config.FromAddress != ""
}

// SendResult is returned from every send attempt, including disabled
// no-op sends.
type SendResult struct {
	Delivered bool
	Skipped   bool
	Err       error
}

type Mailer struct {
	config Config
}

func New(config Config) *Mailer {
	return &Mailer{config: config}
}

// Send delivers one HTML email. Without configuration it logs and skips;
// it never raises past its result.
func (mailer *Mailer) Send(to string, subject string, htmlBody string) SendResult {
	if !mailer.config.Enabled() {
		log.Debug("mail disabled, skipping send", "to", to, "subject", subject)
		return SendResult{Skipped: true}
	}
	if to == "" {
		log.Warn("mail recipient empty, skipping send", "subject", subject)
		return SendResult{Skipped: true}
	}

	if err := mailer.deliver(to, subject, htmlBody); err != nil {
		log.Error("mail send failed", "to", to, "subject", subject, "error", err)
		return SendResult{Err: err}
	}
	return SendResult{Delivered: true}
}

func (mailer *Mailer) deliver(to string, subject string, htmlBody string) error {
	server := mail.NewSMTPClient()
	server.Host = mailer.config.Host
	server.Port = mailer.config.Port
	server.Username = mailer.config.Username
	server.Password = mailer.config.Password
	server.KeepAlive = false
	server.ConnectTimeout = 10 * time.Second
	server.SendTimeout = 10 * time.Second

	if mailer.config.UseTLS {
		server.Encryption = mail.EncryptionSTARTTLS
	} else {
		server.Encryption = mail.EncryptionNone
	}
	if mailer.config.InsecureTLS {
		server.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	client, err := server.Connect()
	if err != nil {
		return fmt.Errorf("connect to SMTP server: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Warn("close SMTP client failed", "error", closeErr)
		}
	}()

	fromName := mailer.config.FromName
	if fromName == "" {
		fromName = "Mulligan"
	}

	message := mail.NewMSG()
	message.SetFrom(fmt.Sprintf("%s <%s>", fromName, mailer.config.FromAddress))
	message.AddTo(to)
	message.SetSubject(subject)
	message.SetBody(mail.TextHTML, htmlBody)
	if message.Error != nil {
		return fmt.Errorf("build message: %w", message.Error)
	}

	if err := message.Send(client); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
