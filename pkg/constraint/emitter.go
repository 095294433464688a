package constraint

// Emitter hands resolved constraints to a layout engine. Establish checks
// ancestry before calling Emit, so an Emitter never sees a spec whose views
// live in different hierarchies.
type Emitter interface {
	Emit(spec Spec) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(spec Spec) error

// Emit calls f(spec).
func (f EmitterFunc) Emit(spec Spec) error {
	return f(spec)
}

// Recorder is an Emitter that keeps every spec in emission order and marks
// it active when its size-class condition matches Traits.
type Recorder struct {
	Traits SizeClassCondition
	specs  []Spec
}

var _ Emitter = (*Recorder)(nil)

// NewRecorder creates a Recorder for an environment with the given traits.
func NewRecorder(traits SizeClassCondition) *Recorder {
	return &Recorder{Traits: traits}
}

// Emit records spec.
func (r *Recorder) Emit(spec Spec) error {
	spec.Active = spec.SizeClass.Matches(r.Traits)
	r.specs = append(r.specs, spec)
	return nil
}

// Specs returns the recorded specs.
func (r *Recorder) Specs() []Spec {
	return r.specs
}

// Active returns the recorded specs whose size-class condition matched.
func (r *Recorder) Active() []Spec {
	var out []Spec
	for _, s := range r.specs {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of recorded specs.
func (r *Recorder) Len() int {
	return len(r.specs)
}
