package organizer

import "context"

// Organizer is a tenant selling through the shop. Each organizer carries two
// Visma Pay credential pairs: the live pair and a test pair used while
// TestMode is on. Private keys stay inside this package's models and are
// never logged or serialized outward.
type Organizer struct {
	ID            int64
	Slug          string
	Name          string
	TestMode      bool
	APIKey        string
	PrivateKey    string
	TestAPIKey    string
	TestPrivateKey string
	APISecretHash string
}

// Credentials returns the credential pair selected by the test-mode flag.
// ok is false when the selected pair is not fully configured.
func (o *Organizer) Credentials() (apiKey, privateKey string, ok bool) {
	apiKey, privateKey = o.APIKey, o.PrivateKey
	if o.TestMode {
		apiKey, privateKey = o.TestAPIKey, o.TestPrivateKey
	}

	if apiKey == "" || privateKey == "" {
		return "", "", false
	}
	return apiKey, privateKey, true
}

// Store resolves organizers. Backed by Postgres in production, mocked in tests.
type Store interface {
	Get(ctx context.Context, id int64) (*Organizer, error)
	GetBySlug(ctx context.Context, slug string) (*Organizer, error)
}
