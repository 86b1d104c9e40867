package message

// SchemaError reports an input event that does not fit the message schema:
// invalid JSON, a missing or unrecognized kind, missing required fields, or
// location fields that violate the model invariants. A SchemaError is never
// fatal to a run; the dispatcher logs it and skips the event.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return e.Reason
}
