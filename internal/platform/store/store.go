package store

import (
	"sync"
)

// ModalLogin is the modal mode opened when the session expires.
const ModalLogin = "login"

// Memory is the in-process application store: the login modal state and the
// queue of user-facing error messages. Safe for concurrent use.
type Memory struct {
	mu           sync.Mutex
	modalMode    string
	modalVisible bool
	messages     []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Notify(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
}

// RequestLogin shows the login modal. Calling it again has no further effect.
func (m *Memory) RequestLogin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modalMode = ModalLogin
	m.modalVisible = true
}

// Modal returns the current modal mode and whether it is visible.
func (m *Memory) Modal() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modalMode, m.modalVisible
}

// CloseModal hides the modal, e.g. after a successful login.
func (m *Memory) CloseModal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modalVisible = false
}

// Drain returns and clears the pending error messages.
func (m *Memory) Drain() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.messages
	m.messages = nil
	return out
}
