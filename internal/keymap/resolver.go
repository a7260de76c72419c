package keymap

import "slices"

// Resolver maps key strings to actions and back.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
	descs   map[Action]string
}

// NewResolver indexes bindings. A key bound twice resolves to the last
// binding; an action keeps the description of its first binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
		descs:   make(map[Action]string),
	}
	for _, b := range bindings {
		if _, ok := r.descs[b.Action]; !ok {
			r.descs[b.Action] = b.Description
		}
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" if none.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Description returns the help text of action.
func (r *Resolver) Description(action Action) string {
	return r.descs[action]
}
