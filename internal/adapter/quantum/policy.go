package quantum

// notFoundPolicy decides what a not-found response means for an operation.
type notFoundPolicy int

const (
	// propagateAll surfaces every non-2xx status as an error.
	propagateAll notFoundPolicy = iota
	// absentOnNotFound turns not-found into a nil entity.
	absentOnNotFound
	// emptyOnNotFound turns not-found into an empty collection.
	emptyOnNotFound
	// falseOnNotFound turns not-found into a false success flag.
	falseOnNotFound
)

func (p notFoundPolicy) String() string {
	switch p {
	case absentOnNotFound:
		return "absent-on-not-found"
	case emptyOnNotFound:
		return "empty-on-not-found"
	case falseOnNotFound:
		return "false-on-not-found"
	}
	return "propagate-all"
}

// outcome is the interpretation of a response status.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeAbsent
	outcomeFailure
)

// interpret maps a response status to an outcome under the given policy.
func interpret(status int, policy notFoundPolicy) outcome {
	if status >= 200 && status < 300 {
		return outcomeSuccess
	}
	if isNotFound(status) && policy != propagateAll {
		return outcomeAbsent
	}
	return outcomeFailure
}
