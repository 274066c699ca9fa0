package tween

// List is a caller-owned collection of tweens. A tween added via
// [Tween.LinkToList] removes itself when it ends, naturally or by kill, so
// the list only ever holds active tweens. Useful for owners that want to
// bulk-cancel everything they started, for example when a screen is torn
// down.
type List struct {
	tweens []*Tween
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Len returns the number of tweens currently linked.
func (l *List) Len() int { return len(l.tweens) }

// Contains reports whether t is currently linked.
func (l *List) Contains(t *Tween) bool {
	for _, existing := range l.tweens {
		if existing == t {
			return true
		}
	}
	return false
}

// KillAll kills every linked tween. Each removes itself from the list as
// it dies, leaving the list empty when KillAll returns.
func (l *List) KillAll() {
	snapshot := make([]*Tween, len(l.tweens))
	copy(snapshot, l.tweens)
	for _, t := range snapshot {
		t.Kill()
	}
}

func (l *List) add(t *Tween) {
	if l.Contains(t) {
		return
	}
	l.tweens = append(l.tweens, t)
}

func (l *List) remove(t *Tween) {
	for i, existing := range l.tweens {
		if existing == t {
			l.tweens = append(l.tweens[:i], l.tweens[i+1:]...)
			return
		}
	}
}
