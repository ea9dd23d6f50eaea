package smtp

import (
	"fmt"

	"github.com/medicard/backend/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailServer struct {
	enabled bool
	server  string
	port    int
	user    string
	pass    string
	admin   string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		enabled: conf.Email.Enabled,
		server:  conf.Email.Server,
		port:    conf.Email.Port,
		user:    conf.Email.User,
		pass:    conf.Email.Pass,
		admin:   conf.Email.Admin,
	}
}

// SendRegistrationNotice mails a new user that an account was created
// for them. Best effort: callers fire it in a goroutine and ignore the
// result beyond logging.
func (s *EmailServer) SendRegistrationNotice(toEmail, firstName string) error {
	if !s.enabled {
		return nil
	}

	m := s.getMessageBase("Your account has been created", toEmail)
	m.SetBody(
		"text/plain",
		fmt.Sprintf(
			"Hello %s,\n\nAn account has been registered for you. "+
				"Please contact your clinic to obtain your access card.\n",
			firstName,
		),
	)

	return s.send(m)
}

func (s *EmailServer) getMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}
