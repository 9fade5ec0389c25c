package colorspace

import (
	"sync"

	"github.com/DianaNites/embedded-image/pixel"
)

// Registry manages the available color space profiles
type Registry struct {
	mu       sync.RWMutex
	profiles map[pixel.Space]Profile
}

var defaultRegistry = &Registry{
	profiles: make(map[pixel.Space]Profile),
}

// Register registers a profile under its space tag
func Register(p Profile) {
	defaultRegistry.Register(p)
}

// Lookup retrieves the profile registered for a space
func Lookup(space pixel.Space) (Profile, bool) {
	return defaultRegistry.Lookup(space)
}

// Supported reports whether a profile is registered for the space.
// AsIs is always supported; it carries no profile.
func Supported(space pixel.Space) bool {
	if space == pixel.AsIs {
		return true
	}
	_, ok := Lookup(space)
	return ok
}

// Register registers a profile under its space tag
func (r *Registry) Register(p Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Space] = p
}

// Lookup retrieves the profile registered for a space
func (r *Registry) Lookup(space pixel.Space) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[space]
	return p, ok
}
