package apierror

import "github.com/kochabx/formkit/form"

// ClearFormErrors removes the backend key from control and every descendant,
// leaving all other error keys in place. It is safe to call repeatedly.
func ClearFormErrors(control form.Control) {
	form.Walk(control, func(c form.Control) {
		errs := c.Errors()
		if !errs.Has(form.BackendKey) {
			return
		}
		c.SetErrors(errs.Without(form.BackendKey))
	})
}
