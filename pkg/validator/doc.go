// Package validator provides itemized, checklist-style validation for common
// user input: email addresses, international phone numbers, and passwords.
//
// Unlike validators that return a single error on the first failure, the
// checklist validators here evaluate every requirement and report each one as
// a Requirement with a stable message, so callers (typically live-typing UIs)
// can render a pass/fail list that never reorders between calls. The Result
// constructors (NewResult and Evaluate) keep the invariant that IsValid is
// true exactly when every requirement is met; there is no way to construct an
// inconsistent Result through the public API.
//
// # Architecture
//
// Each source file groups the checks for one input domain (email_rules.go,
// phone_rules.go, password_rules.go). The phone validator consults a static
// numbering plan (numbering_plan.go) mapping supported country calling codes
// to expected national-number lengths and mobile prefixes. There is no global
// mutable state: the numbering plan and all regular expressions are built once
// at package initialization and never modified, so the package is safe for
// unrestricted concurrent use.
//
// # Usage
//
//	result := validator.CheckPasswordStrength(input)
//	for _, req := range result.Requirements {
//	    render(req.Met, req.Message)
//	}
//	if result.IsValid {
//	    // accept
//	}
//
// Custom checklists can be built from the same primitives:
//
//	result := validator.Evaluate(
//	    validator.Check{Passed: func() bool { return len(name) > 0 }, Message: "name is required"},
//	    validator.Check{Passed: func() bool { return validator.ValidateEmail(email) }, Message: "must be a valid email address"},
//	)
//
// # Error Handling
//
// No operation returns an error. Every function is total over its string
// input: empty or malformed input produces the documented invalid result (a
// false boolean or a Result with failed requirements), never a panic. Callers
// inspect results instead of handling failures.
package validator
