package mail

import (
	"Inkstone/internal/api/config"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// Sender SMTP 邮件发送器，调用方自行决定投递失败是否致命
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender() *Sender {
	cfg := config.Cfg.Mail
	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send 发送一封纯文本邮件
func (s *Sender) Send(to string, subject string, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "send mail")
	}
	return nil
}
