package keymap

import "slices"

// Resolver answers which action a key triggers, for a fixed set of
// bindings.
type Resolver struct {
	actionByKey  map[string]Action
	keysByAction map[Action][]string
}

// NewResolver indexes bindings by key and by action. A key bound in
// several contexts is listed once per action, in binding order.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actionByKey:  make(map[string]Action),
		keysByAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actionByKey[key] = b.Action
			if !slices.Contains(r.keysByAction[b.Action], key) {
				r.keysByAction[b.Action] = append(r.keysByAction[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actionByKey[key]
}

// KeysFor returns the keys bound to action, for help text.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keysByAction[action]
}
