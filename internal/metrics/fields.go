package metrics

// Attribute keys shared by every instrument.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrSuccess  = "success"
	AttrOutcome  = "outcome"
)

// Outcome values for AttrOutcome.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
