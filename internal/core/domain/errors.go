package domain

// ValidationError reports invalid client input. Unlike storage errors, its
// message is safe to return verbatim to the caller.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
