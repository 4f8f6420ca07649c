package api

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// adminGate holds the process-scoped set of unlocked admin sessions. A
// successful unlock issues an opaque token; the token is the session's
// write capability.
type adminGate struct {
	password string

	mu     sync.Mutex
	tokens map[string]bool
}

func newAdminGate(password string) *adminGate {
	return &adminGate{
		password: password,
		tokens:   make(map[string]bool),
	}
}

// Unlock checks the shared secret and, on success, issues a session token.
// An empty configured password keeps the gate permanently locked.
func (g *adminGate) Unlock(secret string) (string, bool) {
	if g.password == "" || secret != g.password {
		return "", false
	}
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", false
	}
	token := hex.EncodeToString(buf)

	g.mu.Lock()
	g.tokens[token] = true
	g.mu.Unlock()
	return token, true
}

// IsUnlocked reports whether token belongs to an unlocked session.
func (g *adminGate) IsUnlocked(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tokens[token]
}

// session materializes the capability the edit protocol requires.
func (g *adminGate) session(token string) gateSession {
	return gateSession{unlocked: g.IsUnlocked(token)}
}

type gateSession struct {
	unlocked bool
}

func (s gateSession) Unlocked() bool { return s.unlocked }
