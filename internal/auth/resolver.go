package auth

// Resolver maps opaque api-key credentials to user ids. The table is
// injected at construction so deployments and tests can substitute
// arbitrary credential sets.
type Resolver struct {
	keys map[string]int64
}

// NewResolver creates a resolver over a copy of the given credential table
func NewResolver(keys map[string]int64) *Resolver {
	copied := make(map[string]int64, len(keys))
	for token, id := range keys {
		copied[token] = id
	}
	return &Resolver{keys: copied}
}

// Resolve returns the user id for a credential. The second return is
// false for unknown credentials; callers must reject the request before
// any state mutation.
func (r *Resolver) Resolve(credential string) (int64, bool) {
	id, ok := r.keys[credential]
	return id, ok
}
