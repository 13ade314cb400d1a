package mailer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"kotoba/backend/internal/logger"
)

// Message is a fully rendered email.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTML     string
	Text     string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender sends mail through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, msg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Dispatcher renders summaries into the daily email and hands them to a Sender.
type Dispatcher struct {
	sender   Sender
	from     string
	fromName string
	loc      *time.Location
	now      func() time.Time
}

// NewDispatcher creates a dispatcher. Dates in the subject and header are shown in loc.
func NewDispatcher(sender Sender, from, fromName string, loc *time.Location) *Dispatcher {
	if loc == nil {
		loc = time.Local
	}
	return &Dispatcher{
		sender:   sender,
		from:     from,
		fromName: fromName,
		loc:      loc,
		now:      time.Now,
	}
}

// SendSummary emails the rendered summary to to. It never fails loudly:
// any error is logged and reported as false.
func (d *Dispatcher) SendSummary(ctx context.Context, to, markdown string) bool {
	msg := d.Compose(to, markdown)
	if err := d.sender.Send(ctx, msg); err != nil {
		logger.Error("summary email failed", "module", "mailer", "action", "send", "resource", "email", "result", "failed", "to", to, "error", err)
		return false
	}
	logger.Info("summary email sent", "module", "mailer", "action", "send", "resource", "email", "result", "ok", "to", to)
	return true
}

// Compose builds the message SendSummary would send.
func (d *Dispatcher) Compose(to, markdown string) Message {
	now := d.now().In(d.loc)
	body := RenderHTML(markdown)
	return Message{
		From:     d.from,
		FromName: d.fromName,
		To:       to,
		Subject:  "🌸 Your Japanese Progress - " + now.Format("Jan 2"),
		HTML:     fmt.Sprintf(layout, now.Format("Monday, January 2, 2006"), body),
		Text:     PlainText(body),
	}
}

const layout = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background-color: #f5f5f5; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f5f5f5; padding: 40px 20px;">
    <tr>
      <td align="center">
        <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); overflow: hidden;">
          <tr>
            <td style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 40px 30px; text-align: center;">
              <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: 700;">🌸 Your Japanese Progress</h1>
              <p style="margin: 10px 0 0 0; color: #e0e7ff; font-size: 14px;">%s</p>
            </td>
          </tr>
          <tr>
            <td style="padding: 40px 30px; color: #1f2937; font-size: 15px; line-height: 1.7;">
              %s
            </td>
          </tr>
          <tr>
            <td style="background-color: #f9fafb; padding: 30px; text-align: center; border-top: 1px solid #e5e7eb;">
              <p style="margin: 0 0 10px 0; color: #6b7280; font-size: 13px;">頑張って！(Ganbatte!) - You've got this!</p>
              <p style="margin: 0; color: #9ca3af; font-size: 12px;">Japanese Learning Journey • Sent with ❤️</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`
