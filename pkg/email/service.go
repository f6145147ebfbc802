// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/jaytaylor/html2text"
	"github.com/wneessen/go-mail"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

var _ ServiceInterface = (*Service)(nil)

type Config struct {
	From                 string
	DisableAll           bool
	MonitoringEnabled    bool
	MonitoringRecipients []string
	// MonitoringAddress receives a notice whenever a send fails
	MonitoringAddress string
}

type Service struct {
	sender    SenderInterface
	templates *template.Template
	cfg       Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type rendered struct {
	html string
	text string
}

func (s *Service) render(name types.EmailTemplate, params map[string]any) (*rendered, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, string(name)+".html", params); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, err)
	}

	text, err := html2text.FromString(buf.String(), html2text.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to derive text body for %s: %w", name, err)
	}

	return &rendered{html: buf.String(), text: text}, nil
}

func (s *Service) message(subject string, body *rendered, to string, cc, bcc []string) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", s.cfg.From, err)
	}

	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}

	if len(cc) > 0 {
		if err := m.Cc(cc...); err != nil {
			return nil, fmt.Errorf("invalid cc: %w", err)
		}
	}

	if len(bcc) > 0 {
		if err := m.Bcc(bcc...); err != nil {
			return nil, fmt.Errorf("invalid bcc: %w", err)
		}
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body.text)
	if body.html != "" {
		m.AddAlternativeString(mail.TypeTextHTML, body.html)
	}

	return m, nil
}

func (s *Service) SendEmailNotification(ctx context.Context, n types.EmailNotification) error {
	ctx, span := s.tracer.Start(ctx, "email.Service.SendEmailNotification")
	defer span.End()

	if s.cfg.DisableAll {
		s.logger.Infof("email disabled, skipping %s to %s", n.Template, n.To)
		return nil
	}

	body, err := s.render(n.Template, n.Params)
	if err != nil {
		return err
	}

	m, err := s.message(n.Subject, body, n.To, n.CC, n.BCC)
	if err != nil {
		return err
	}

	if err := s.sender.DialAndSendWithContext(ctx, m); err != nil {
		s.count(n.Template, "error")
		s.notifyFailure(ctx, n, err)
		return fmt.Errorf("failed to send %s email: %w", n.Template, err)
	}

	s.count(n.Template, "sent")

	if n.SendMonitoringEmail && s.cfg.MonitoringEnabled && len(s.cfg.MonitoringRecipients) > 0 {
		s.sendMonitoringCopies(ctx, n, body)
	}

	return nil
}

// sendMonitoringCopies sends one copy per monitoring recipient. Failures are
// logged and never retried.
func (s *Service) sendMonitoringCopies(ctx context.Context, n types.EmailNotification, body *rendered) {
	subject := fmt.Sprintf("Monitoring: Email from %s with %s", n.To, n.Subject)

	var wg sync.WaitGroup
	for _, recipient := range s.cfg.MonitoringRecipients {
		wg.Go(func() {
			m, err := s.message(subject, body, recipient, nil, nil)
			if err == nil {
				err = s.sender.DialAndSendWithContext(ctx, m)
			}

			if err != nil {
				s.logger.Errorf("failed to send monitoring copy to %s: %v", recipient, err)
			}
		})
	}
	wg.Wait()
}

func (s *Service) notifyFailure(ctx context.Context, n types.EmailNotification, cause error) {
	if !s.cfg.MonitoringEnabled || s.cfg.MonitoringAddress == "" {
		return
	}

	body := &rendered{text: fmt.Sprintf("Sending the %s email to %s failed: %v", n.Template, n.To, cause)}

	m, err := s.message(fmt.Sprintf("Email error: %s to %s", n.Template, n.To), body, s.cfg.MonitoringAddress, nil, nil)
	if err == nil {
		err = s.sender.DialAndSendWithContext(ctx, m)
	}

	if err != nil {
		s.logger.Errorf("failed to send email error notice: %v", err)
	}
}

func (s *Service) count(t types.EmailTemplate, outcome string) {
	if err := s.monitor.IncrementCounter(monitoring.EmailCounter, map[string]string{"template": string(t), "outcome": outcome}); err != nil {
		s.logger.Debugf("failed to increment email counter: %v", err)
	}
}

func NewService(sender SenderInterface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Service, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	s := new(Service)

	s.sender = sender
	s.templates = tmpl.Option("missingkey=zero")
	s.cfg = cfg

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
