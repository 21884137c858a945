package form

// Control is a node of a form tree. Controls are not safe for concurrent use;
// a tree belongs to a single owner.
type Control interface {
	Value() any
	Errors() Errors
	// SetErrors replaces the error set; an empty set is stored as nil.
	SetErrors(errs Errors)
	// Valid reports whether the control and all of its descendants have no errors.
	Valid() bool
	Touched() bool
	MarkAsTouched()
	MarkAsUntouched()
	// UpdateValueAndValidity re-runs the control's validators. An existing
	// BackendKey entry survives. Parents are revalidated unless OnlySelf is given.
	UpdateValueAndValidity(opts ...UpdateOption)
	Parent() Control

	setParent(parent Control)
}

// Composite is a control that owns children.
type Composite interface {
	Control
	Child(seg Segment) (Control, bool)
	Children() []Control
}

// ValidatorFn computes client-side errors for a control; nil means valid.
type ValidatorFn func(Control) Errors

type updateOptions struct {
	onlySelf bool
}

// UpdateOption configures UpdateValueAndValidity.
type UpdateOption func(*updateOptions)

// OnlySelf stops revalidation from propagating to ancestors.
func OnlySelf() UpdateOption {
	return func(o *updateOptions) {
		o.onlySelf = true
	}
}

// base holds the state shared by every control kind.
type base struct {
	self       Control
	parent     Control
	errors     Errors
	touched    bool
	validators []ValidatorFn
}

func (b *base) Errors() Errors { return b.errors }

func (b *base) SetErrors(errs Errors) { b.errors = normalize(errs) }

func (b *base) Touched() bool { return b.touched }

func (b *base) MarkAsTouched() { b.touched = true }

func (b *base) MarkAsUntouched() { b.touched = false }

func (b *base) Parent() Control { return b.parent }

func (b *base) setParent(parent Control) { b.parent = parent }

func (b *base) UpdateValueAndValidity(opts ...UpdateOption) {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}

	var errs Errors
	for _, fn := range b.validators {
		for k, v := range fn(b.self) {
			if errs == nil {
				errs = make(Errors)
			}
			errs[k] = v
		}
	}
	if backend, ok := b.errors[BackendKey]; ok {
		errs = errs.With(BackendKey, backend)
	}
	b.errors = normalize(errs)

	if !o.onlySelf && b.parent != nil {
		b.parent.UpdateValueAndValidity()
	}
}

func childrenValid(children []Control) bool {
	for _, c := range children {
		if !c.Valid() {
			return false
		}
	}
	return true
}
