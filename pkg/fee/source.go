package fee

import (
	"context"
	"os"
	"strings"
	"sync"
)

// EnvSource reads fee keys from the process environment. The key is tried verbatim
// and then in its FEE_ upper-snake form (WithdrawalFee -> FEE_WITHDRAWAL_FEE).
type EnvSource struct{}

// Lookup implements Source.
func (EnvSource) Lookup(_ context.Context, key string) (string, bool, error) {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v), true, nil
	}
	v, ok := os.LookupEnv(EnvName(key))
	return strings.TrimSpace(v), ok, nil
}

// EnvName converts a camel-case fee key to its FEE_ environment variable name.
func EnvName(key string) string {
	var b strings.Builder
	b.WriteString("FEE_")
	for i, r := range key {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// MapSource is an in-memory Source, safe for concurrent updates.
type MapSource struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapSource returns a MapSource seeded with values.
func NewMapSource(values map[string]string) *MapSource {
	m := &MapSource{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Set changes one key.
func (m *MapSource) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Delete removes one key.
func (m *MapSource) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// Lookup implements Source.
func (m *MapSource) Lookup(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}
