package mailer

import (
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"
)

type IEscalationMailer interface {
	SendWelfareEscalation(query, answer string) error
}

type escalationMailer struct {
	dialer         *gomail.Dialer
	senderEmail    string
	counselorEmail string
}

func NewEscalationMailer(host string, port int, username, password, senderEmail, counselorEmail string) IEscalationMailer {
	d := gomail.NewDialer(host, port, username, password)

	return &escalationMailer{
		dialer:         d,
		senderEmail:    senderEmail,
		counselorEmail: counselorEmail,
	}
}

func (s *escalationMailer) SendWelfareEscalation(query, answer string) error {
	if s.counselorEmail == "" {
		// No counselor configured; escalation stays in the interaction log only.
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.counselorEmail)
	m.SetHeader("Subject", "Welfare escalation: student query flagged for review")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welfare Escalation</h2>
			<p>A student query matched welfare distress cues at %s and may need human follow-up.</p>
			<h3>Query</h3>
			<p style="background: #f5f5f5; padding: 10px; border-radius: 5px;">%s</p>
			<h3>Advisor response sent</h3>
			<p style="background: #f5f5f5; padding: 10px; border-radius: 5px;">%s</p>
			<p>This notification is automated. Please review the full interaction log for context.</p>
		</div>
	`, time.Now().Format(time.RFC1123), html.EscapeString(query), html.EscapeString(answer))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welfare escalation: %v\n", err)
		return err
	}

	fmt.Printf("[MAILER] Welfare escalation sent to %s\n", s.counselorEmail)
	return nil
}
