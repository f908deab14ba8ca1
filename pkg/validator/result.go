package validator

// Requirement represents a single named pass/fail check within a validation
// result. Requirements are constructed fresh per call and never mutated after
// construction; their order within a Result is significant and stable across
// calls with the same operation.
type Requirement struct {
	Met     bool   `json:"met"`
	Message string `json:"message"`
}

// Result is the outcome of an itemized validation. IsValid is true if and
// only if every requirement is met; the NewResult and Evaluate constructors
// enforce the invariant, so a Result obtained through this package is always
// internally consistent.
type Result struct {
	IsValid      bool          `json:"isValid"`
	Requirements []Requirement `json:"requirements"`
}

// NewResult builds a Result from already-evaluated requirements, deriving
// IsValid from the conjunction of their Met flags. Use it when the
// requirement outcomes are computed together from shared context; use
// Evaluate when each requirement has an independent predicate.
func NewResult(requirements ...Requirement) Result {
	valid := true
	for _, req := range requirements {
		if !req.Met {
			valid = false
		}
	}
	return Result{IsValid: valid, Requirements: requirements}
}

// Check pairs a predicate with the requirement message it reports.
type Check struct {
	Passed  func() bool
	Message string
}

// Evaluate runs every check in order and collects the outcomes into a Result.
// All checks are evaluated; there is no short-circuiting, so the returned
// requirement list always has one entry per check, in argument order.
func Evaluate(checks ...Check) Result {
	requirements := make([]Requirement, 0, len(checks))
	valid := true

	for _, check := range checks {
		met := check.Passed()
		if !met {
			valid = false
		}
		requirements = append(requirements, Requirement{Met: met, Message: check.Message})
	}

	return Result{IsValid: valid, Requirements: requirements}
}

// failAll builds a Result where every requirement is reported unmet,
// regardless of what the individual predicates would return. Used for inputs
// that are rejected wholesale, such as empty passwords.
func failAll(messages ...string) Result {
	requirements := make([]Requirement, 0, len(messages))
	for _, message := range messages {
		requirements = append(requirements, Requirement{Met: false, Message: message})
	}
	return Result{IsValid: false, Requirements: requirements}
}
