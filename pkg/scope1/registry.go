package scope1

// Registry maps entity identifiers to profiles.
type Registry struct {
	order    []string
	profiles map[string]Profile
}

// NewRegistry creates a registry holding the given profiles.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile)}
	for _, p := range profiles {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a registry with the built-in FZE and SSL profiles.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(FZEProfile(), SSLProfile())
	if err != nil {
		panic(err)
	}
	return r
}

// Register validates a profile and adds it, replacing any profile with the same ID.
func (r *Registry) Register(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := r.profiles[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.profiles[p.ID] = p
	return nil
}

// Lookup returns the profile registered for entity.
func (r *Registry) Lookup(entity string) (Profile, error) {
	p, ok := r.profiles[entity]
	if !ok {
		return Profile{}, &UnknownEntityError{Entity: entity, Supported: r.Entities()}
	}
	return p, nil
}

// Entities returns the registered entity identifiers in registration order.
func (r *Registry) Entities() []string {
	return append([]string(nil), r.order...)
}
