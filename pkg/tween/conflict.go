package tween

// ConflictRegistry tracks which tweens animate which target, so a new
// animation request can cancel prior ones on the same target before it
// starts. Keys are opaque comparable values chosen by the caller — a
// pointer to the animated object, or a (target, property) pair when
// independent properties of one target must be cancellable separately.
//
// Tweens attach to a key via [Tween.SetTarget] and detach automatically
// when they end. Like the [Scheduler], a registry is confined to the
// goroutine driving its tweens.
type ConflictRegistry struct {
	targets map[any]map[*Tween]struct{}
}

// NewConflictRegistry creates an empty registry.
func NewConflictRegistry() *ConflictRegistry {
	return &ConflictRegistry{targets: make(map[any]map[*Tween]struct{})}
}

// IsAnimating reports whether any active tween is registered under key.
func (r *ConflictRegistry) IsAnimating(key any) bool {
	return len(r.targets[key]) > 0
}

// Count returns the number of active tweens registered under key.
func (r *ConflictRegistry) Count(key any) int {
	return len(r.targets[key])
}

// KillAll kills every tween registered under key. Each tween's OnKill and
// OnComplete fire before KillAll returns, and IsAnimating(key) is false
// afterwards. Kill order between the affected tweens is unspecified.
func (r *ConflictRegistry) KillAll(key any) {
	set := r.targets[key]
	if len(set) == 0 {
		return
	}
	snapshot := make([]*Tween, 0, len(set))
	for t := range set {
		snapshot = append(snapshot, t)
	}
	for _, t := range snapshot {
		t.Kill()
	}
}

// register adds a tween under key. Called from Tween.SetTarget.
func (r *ConflictRegistry) register(key any, t *Tween) {
	set := r.targets[key]
	if set == nil {
		set = make(map[*Tween]struct{})
		r.targets[key] = set
	}
	set[t] = struct{}{}
}

// unregister removes a tween from key. Called when the tween ends.
func (r *ConflictRegistry) unregister(key any, t *Tween) {
	set := r.targets[key]
	if set == nil {
		return
	}
	delete(set, t)
	if len(set) == 0 {
		delete(r.targets, key)
	}
}
