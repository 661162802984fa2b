package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/hredostate/upss-webly/internal/config"
	"github.com/hredostate/upss-webly/internal/models"
)

// Sender отправляет письма соискателям через SMTP.
type Sender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(to, subject, body string) error {
	if !s.cfg.Email.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Email.FromEmail, s.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NotifyStatusChange отправляет соискателю уведомление о смене статуса заявки.
func (s *Sender) NotifyStatusChange(to, applicantName, jobTitle string, status models.ApplicationStatus) error {
	subject := fmt.Sprintf("Update on your application for %s", jobTitle)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>The status of your application for <b>%s</b> has changed to <b>%s</b>.</p><p>You can review the details in your account.</p>",
		applicantName, jobTitle, statusLabel(status),
	)
	return s.Send(to, subject, body)
}

func statusLabel(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationStatusSubmitted:
		return "Submitted"
	case models.ApplicationStatusUnderReview:
		return "Under review"
	case models.ApplicationStatusShortlisted:
		return "Shortlisted"
	case models.ApplicationStatusInterviewScheduled:
		return "Interview scheduled"
	case models.ApplicationStatusInterviewCompleted:
		return "Interview completed"
	case models.ApplicationStatusOfferExtended:
		return "Offer extended"
	case models.ApplicationStatusOfferAccepted:
		return "Offer accepted"
	case models.ApplicationStatusHired:
		return "Hired"
	case models.ApplicationStatusRejected:
		return "Not selected"
	case models.ApplicationStatusWithdrawn:
		return "Withdrawn"
	default:
		return string(status)
	}
}
