package ports

// FingerprintStore persists the generation fingerprint between invocations.
// It is the only generation state kept on disk besides the generated tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Load returns the previously persisted fingerprint, or "" when none
	// exists.
	Load(projectPath string) (string, error)

	// Store persists the fingerprint for the given project path.
	Store(projectPath, fingerprint string) error
}
