package settings

// APIKeyStore exposes the stored DevSensei API key behind an explicit
// get/clear accessor so the transport layer never reaches for ambient state.
// The production store is backed by the config file; tests substitute an
// in-memory implementation.
type APIKeyStore struct {
	cfg *Config
}

// NewAPIKeyStore wraps a config in a store handed to the REST client.
func NewAPIKeyStore(cfg *Config) *APIKeyStore {
	return &APIKeyStore{cfg: cfg}
}

// APIKey returns the stored key, or "" when the user has not configured one.
func (s *APIKeyStore) APIKey() string {
	return s.cfg.Token
}

// Clear drops the stored key. Called by the transport layer when the server
// reports the key is no longer valid. Clearing an already empty store is a
// no-op, which keeps concurrent 401 responses safe.
func (s *APIKeyStore) Clear() error {
	if s.cfg.Token == "" {
		return nil
	}

	s.cfg.Token = ""
	if s.cfg.FileUsed == "" {
		return nil
	}
	return s.cfg.WriteToDisk()
}
