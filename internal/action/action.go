package action

// State tracks whether the check chain should keep running.
type State int

const (
	Continue State = iota // next check may run
	Done                  // terminal verdict reached
)

// Verdict is the pipeline's final outcome. Exactly one is produced per
// request; the transport layer interprets it and performs the redirect,
// status page, or pass-through.
type Verdict struct {
	Allowed     bool
	Reason      string
	RedirectURL string // set on Allow when the visitor is redirected
	Exit        string // one of dataType.Exit*, set on Block
}

// Decision accumulates the verdict while checks run.
type Decision struct {
	State   State
	Verdict Verdict
}

func NewDecision() *Decision {
	return &Decision{State: Continue, Verdict: Verdict{Allowed: true}}
}

// Block ends the chain with a terminal Block verdict. The exit behavior
// is filled in by the pipeline from configuration.
func (d *Decision) Block(reason string) {
	d.State = Done
	d.Verdict = Verdict{Allowed: false, Reason: reason}
}

// AllowRedirect ends the chain with a terminal Allow verdict carrying a
// redirect target for the legitimate visitor.
func (d *Decision) AllowRedirect(url string) {
	d.State = Done
	d.Verdict = Verdict{Allowed: true, RedirectURL: url}
}

// Pass lets the chain continue to the next check.
func (d *Decision) Pass() {
	d.State = Continue
}
