package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// LogDelivery records the submission in the log and nothing else.
type LogDelivery struct {
	log *zap.Logger
}

func NewLogDelivery(log *zap.Logger) *LogDelivery {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogDelivery{log: log}
}

func (d *LogDelivery) Deliver(_ context.Context, v Values) error {
	d.log.Info("contact form submitted",
		zap.String("name", v.Name),
		zap.String("email", v.Email),
		zap.Bool("has_phone", v.Phone != ""),
		zap.Int("message_len", len(v.Message)),
	)
	return nil
}

// SMTPConfig holds mail relay settings.
type SMTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	To   string `yaml:"to"`
}

// SMTPDelivery mails each submission to the site owner.
type SMTPDelivery struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	log  *zap.Logger
}

func NewSMTPDelivery(cfg SMTPConfig, log *zap.Logger) *SMTPDelivery {
	if log == nil {
		log = zap.NewNop()
	}
	return &SMTPDelivery{cfg: cfg, send: smtp.SendMail, log: log}
}

func (d *SMTPDelivery) Deliver(_ context.Context, v Values) error {
	if d.cfg.User == "" || d.cfg.Pass == "" {
		return errors.New("SMTP credentials not configured")
	}

	auth := smtp.PlainAuth("", d.cfg.User, d.cfg.Pass, d.cfg.Host)
	err := d.send(d.cfg.Host+":"+d.cfg.Port, auth, d.cfg.User, []string{d.cfg.To}, composeMessage(d.cfg, v))
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}

	d.log.Info("contact email sent", zap.String("name", v.Name), zap.String("email", v.Email))
	return nil
}

var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

func composeMessage(cfg SMTPConfig, v Values) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(v.Name))

	phone := v.Phone
	if phone == "" {
		phone = "-"
	}

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Phone: %s
Message:
%s

---
Sent from your portfolio contact form
`, v.Name, v.Email, phone, v.Message)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + headerSafe.Replace(v.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
