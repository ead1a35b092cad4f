package entity

// RuntimeInputs maps placeholder names to the values supplied for one run,
// e.g. "motion" for the debate proposition.
type RuntimeInputs map[string]string
