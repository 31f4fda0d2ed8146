package service

import (
	"context"
	"errors"
	"sync"

	"github.com/sefazor/ttravel-backend/pkg/email"
)

func inline(fn func()) { fn() }

type recordingMailer struct {
	mu       sync.Mutex
	contacts []email.ContactNotice
	to       []string
	welcomes []email.Welcome
	fail     bool
}

func (m *recordingMailer) SendContactNotification(_ context.Context, to string, notice email.ContactNotice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.to = append(m.to, to)
	m.contacts = append(m.contacts, notice)
	return nil
}

func (m *recordingMailer) SendNewsletterWelcome(_ context.Context, welcome email.Welcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.welcomes = append(m.welcomes, welcome)
	return nil
}

type published struct {
	subject string
	data    interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{subject: subject, data: data})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.subject)
	}
	return out
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
