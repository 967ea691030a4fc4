package domain

// SanityReport is the outcome of probing the self-hosted model server.
type SanityReport struct {
	Models  []string
	Version string
	Reply   string
}
