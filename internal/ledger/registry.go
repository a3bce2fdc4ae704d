package ledger

// Registry is the participant store for one computation pass. It keeps
// insertion order, which matters: dependency aggregation walks participants
// in the order they were registered, so repeated passes over the same inputs
// stay deterministic.
type Registry struct {
	order  []string
	byName map[string]*Participant
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Participant)}
}

// Add registers a pre-seeded participant. A participant with the same name
// replaces the previous entry but keeps its original position.
func (r *Registry) Add(p *Participant) {
	if _, ok := r.byName[p.Name]; !ok {
		r.order = append(r.order, p.Name)
	}
	r.byName[p.Name] = p
}

// ResolveOrCreate returns the participant with the given name, creating one
// with zero totals if it is unknown. Transactions may reference names that
// were never registered; those become participants on first sight rather
// than errors. Typos therefore silently create phantom participants - a
// known accuracy risk accepted because the source data is unreliable.
func (r *Registry) ResolveOrCreate(name string) *Participant {
	if p, ok := r.byName[name]; ok {
		return p
	}
	p := &Participant{Name: name}
	r.Add(p)
	return p
}

// Get looks up a participant by name.
func (r *Registry) Get(name string) (*Participant, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Remove deletes a participant from the registry. The engine itself never
// calls this; removal is an explicit caller decision.
func (r *Registry) Remove(name string) {
	if _, ok := r.byName[name]; !ok {
		return
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Participants returns all participants in insertion order.
func (r *Registry) Participants() []*Participant {
	out := make([]*Participant, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered participants.
func (r *Registry) Len() int {
	return len(r.order)
}

// reset zeroes every mutable accumulator before a pass, making repeated
// computation over the same inputs idempotent.
func (r *Registry) reset() {
	for _, p := range r.byName {
		p.TotalPaid = 0
		p.TotalConsumed = 0
		p.RawBalance = 0
		p.ShadowBalance = 0
	}
}
