package mocks

import (
	"sync"

	"github.com/user/framefit/pkg/ports"
)

// Logger is a mock implementation of ports.Logger that records messages.
type Logger struct {
	mu            sync.Mutex
	DebugMessages []string
	InfoMessages  []string
	WarnMessages  []string
	ErrorMessages []string
}

func (m *Logger) Debug(msg string, args ...interface{}) {
	m.mu.Lock()
	m.DebugMessages = append(m.DebugMessages, msg)
	m.mu.Unlock()
}

func (m *Logger) Info(msg string, args ...interface{}) {
	m.mu.Lock()
	m.InfoMessages = append(m.InfoMessages, msg)
	m.mu.Unlock()
}

func (m *Logger) Warn(msg string, args ...interface{}) {
	m.mu.Lock()
	m.WarnMessages = append(m.WarnMessages, msg)
	m.mu.Unlock()
}

func (m *Logger) Error(msg string, args ...interface{}) {
	m.mu.Lock()
	m.ErrorMessages = append(m.ErrorMessages, msg)
	m.mu.Unlock()
}

func (m *Logger) WithComponent(component string) ports.Logger {
	return m
}

var _ ports.Logger = (*Logger)(nil)
