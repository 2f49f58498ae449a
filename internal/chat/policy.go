package chat

import "fmt"

// FinishedPolicy decides what happens when a finished quiz-taker sends
// another message.
type FinishedPolicy int

const (
	// PolicyReject replies with FinishedReply and leaves the session alone.
	PolicyReject FinishedPolicy = iota
	// PolicyRestart starts a new attempt and sends the welcome.
	PolicyRestart
)

// FinishedReply is sent to finished quiz-takers under PolicyReject.
const FinishedReply = "The quiz is over. Send /restart to try again."

func (p FinishedPolicy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyRestart:
		return "restart"
	}
	return fmt.Sprintf("FinishedPolicy(%d)", int(p))
}

// ParsePolicy parses "reject" or "restart". The empty string selects
// PolicyReject.
func ParsePolicy(s string) (FinishedPolicy, error) {
	switch s {
	case "", "reject":
		return PolicyReject, nil
	case "restart":
		return PolicyRestart, nil
	}
	return PolicyReject, fmt.Errorf("unknown finished policy %q (want reject or restart)", s)
}
