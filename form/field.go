package form

// Field is a leaf control holding a single value.
type Field struct {
	base
	value   any
	initial any
}

// NewField creates a field and runs its validators once.
func NewField(value any, validators ...ValidatorFn) *Field {
	f := &Field{value: value, initial: value}
	f.self = f
	f.validators = validators
	f.UpdateValueAndValidity(OnlySelf())
	return f
}

func (f *Field) Value() any { return f.value }

func (f *Field) Valid() bool { return f.errors == nil }

// SetValue stores v, drops any server message and revalidates up the tree.
func (f *Field) SetValue(v any) {
	f.value = v
	f.errors = f.errors.Without(BackendKey)
	f.UpdateValueAndValidity()
}

// Reset restores the initial value and marks the field untouched.
func (f *Field) Reset() {
	f.touched = false
	f.SetValue(f.initial)
}
