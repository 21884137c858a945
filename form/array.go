package form

// Array is a composite of indexed children.
type Array struct {
	base
	controls []Control
}

// NewArray creates an array holding controls.
func NewArray(controls ...Control) *Array {
	a := &Array{}
	a.self = a
	for _, c := range controls {
		c.setParent(a)
		a.controls = append(a.controls, c)
	}
	a.UpdateValueAndValidity(OnlySelf())
	return a
}

// Push appends c.
func (a *Array) Push(c Control) {
	c.setParent(a)
	a.controls = append(a.controls, c)
	a.UpdateValueAndValidity()
}

// At returns the control at index i.
func (a *Array) At(i int) (Control, bool) {
	if i < 0 || i >= len(a.controls) {
		return nil, false
	}
	return a.controls[i], true
}

// RemoveAt detaches the control at index i.
func (a *Array) RemoveAt(i int) bool {
	c, ok := a.At(i)
	if !ok {
		return false
	}
	c.setParent(nil)
	a.controls = append(a.controls[:i], a.controls[i+1:]...)
	a.UpdateValueAndValidity()
	return true
}

func (a *Array) Len() int { return len(a.controls) }

// Clear removes every control.
func (a *Array) Clear() {
	for _, c := range a.controls {
		c.setParent(nil)
	}
	a.controls = nil
	a.UpdateValueAndValidity()
}

// Child resolves index segments only.
func (a *Array) Child(seg Segment) (Control, bool) {
	i, ok := seg.Index()
	if !ok {
		return nil, false
	}
	return a.At(i)
}

func (a *Array) Children() []Control {
	return append([]Control(nil), a.controls...)
}

func (a *Array) Value() any {
	out := make([]any, 0, len(a.controls))
	for _, c := range a.controls {
		out = append(out, c.Value())
	}
	return out
}

func (a *Array) Valid() bool {
	return a.errors == nil && childrenValid(a.controls)
}

// WithValidators sets the array's own validators and revalidates it.
func (a *Array) WithValidators(validators ...ValidatorFn) *Array {
	a.validators = validators
	a.UpdateValueAndValidity(OnlySelf())
	return a
}
