package chatbot

import "strings"

// State is a node in the conversation state machine. Exactly one state is
// active per session at any time. There is no terminal state; StateFreeForm
// is perpetually re-enterable.
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingName   State = "awaiting_name"
	StateAwaitingEmail  State = "awaiting_email"
	StateAwaitingBudget State = "awaiting_budget"
	StateCompleted      State = "completed"
	StateFreeForm       State = "free_form"
)

// AllStates lists every conversation state, for the totality test.
var AllStates = []State{
	StateIdle, StateAwaitingName, StateAwaitingEmail,
	StateAwaitingBudget, StateCompleted, StateFreeForm,
}

// Slots are the pieces of information the state machine collects. Each is
// empty until filled.
type Slots struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Budget string `json:"budget,omitempty"`
}

// Transition is the outcome of advancing the state machine by one message.
type Transition struct {
	State  State
	Intent Intent // effective intent, after slot interpretation
	Reply  string
	Slots  Slots

	// EmitLead is set on the single transition into StateCompleted; the
	// orchestrator turns it into a persisted lead and a report request.
	EmitLead bool

	// Fallback means the reply must come from the LLM instead of Reply.
	Fallback bool
}

// informational reports whether the intent gets a canned reply that never
// changes state or slots.
func informational(intent Intent) bool {
	switch intent {
	case IntentPricing, IntentContact, IntentHelp, IntentServices:
		return true
	}
	return false
}

func cannedReply(lang Language, intent Intent) string {
	switch intent {
	case IntentPricing:
		return Reply(lang, "reply.pricing")
	case IntentContact:
		return Reply(lang, "reply.contact")
	case IntentHelp:
		return Reply(lang, "reply.help")
	default:
		return Reply(lang, "reply.services")
	}
}

// Advance is the pure transition function of the conversation state machine.
// It is total: every (state, intent) pair yields a defined transition, with
// unmatched combinations falling through to a "didn't understand" reply in
// the session's language, state unchanged. Slot-validation failures keep the
// state in place and issue a guidance reply; they are never fatal.
func Advance(state State, intent Intent, text string, lang Language, slots Slots) Transition {
	// The reset command works from every state and clears the slots.
	if intent == IntentReset {
		return Transition{State: StateIdle, Intent: intent, Reply: Reply(lang, "reply.reset")}
	}

	switch state {
	case StateIdle:
		return advanceIdle(intent, lang, slots)
	case StateAwaitingName:
		return advanceAwaitingName(intent, text, lang, slots)
	case StateAwaitingEmail:
		return advanceAwaitingEmail(intent, text, lang, slots)
	case StateAwaitingBudget:
		return advanceAwaitingBudget(intent, text, lang, slots)
	case StateCompleted:
		return advanceInformal(StateCompleted, intent, lang, slots)
	default: // StateFreeForm
		return advanceInformal(StateFreeForm, intent, lang, slots)
	}
}

func advanceIdle(intent Intent, lang Language, slots Slots) Transition {
	switch {
	case intent == IntentGreeting:
		return Transition{State: StateIdle, Intent: intent, Reply: Reply(lang, "reply.greeting"), Slots: slots}
	case intent == IntentWebsiteRequest:
		return Transition{State: StateAwaitingName, Intent: intent, Reply: Reply(lang, "reply.ask_name"), Slots: slots}
	case informational(intent):
		return Transition{State: StateIdle, Intent: intent, Reply: cannedReply(lang, intent), Slots: slots}
	case intent == IntentUnknown, intent == IntentProvideEmail, intent == IntentProvideBudget:
		return Transition{State: StateIdle, Intent: IntentUnknown, Slots: slots, Fallback: true}
	default:
		return Transition{State: StateIdle, Intent: intent, Reply: Reply(lang, "reply.unknown"), Slots: slots}
	}
}

func advanceAwaitingName(intent Intent, text string, lang Language, slots Slots) Transition {
	if informational(intent) {
		reply := cannedReply(lang, intent) + " " + Reply(lang, "reply.remind_name")
		return Transition{State: StateAwaitingName, Intent: intent, Reply: reply, Slots: slots}
	}

	// Anything else counts as the name.
	slots.Name = strings.TrimSpace(text)
	return Transition{
		State:  StateAwaitingEmail,
		Intent: IntentProvideName,
		Reply:  Replyf(lang, "reply.ask_email", slots.Name),
		Slots:  slots,
	}
}

func advanceAwaitingEmail(intent Intent, text string, lang Language, slots Slots) Transition {
	if informational(intent) {
		reply := cannedReply(lang, intent) + " " + Reply(lang, "reply.remind_email")
		return Transition{State: StateAwaitingEmail, Intent: intent, Reply: reply, Slots: slots}
	}

	if !ValidEmail(text) {
		return Transition{State: StateAwaitingEmail, Intent: intent, Reply: Reply(lang, "reply.invalid_email"), Slots: slots}
	}

	slots.Email = strings.TrimSpace(text)
	return Transition{
		State:  StateAwaitingBudget,
		Intent: IntentProvideEmail,
		Reply:  Reply(lang, "reply.ask_budget"),
		Slots:  slots,
	}
}

func advanceAwaitingBudget(intent Intent, text string, lang Language, slots Slots) Transition {
	if informational(intent) {
		reply := cannedReply(lang, intent) + " " + Reply(lang, "reply.remind_budget")
		return Transition{State: StateAwaitingBudget, Intent: intent, Reply: reply, Slots: slots}
	}

	if _, ok := ParseBudget(text); !ok {
		return Transition{State: StateAwaitingBudget, Intent: intent, Reply: Reply(lang, "reply.invalid_budget"), Slots: slots}
	}

	slots.Budget = strings.TrimSpace(text)
	return Transition{
		State:    StateCompleted,
		Intent:   IntentProvideBudget,
		Reply:    Replyf(lang, "reply.completed", slots.Budget),
		Slots:    slots,
		EmitLead: true,
	}
}

// advanceInformal covers StateCompleted and StateFreeForm. Unknown stays put
// and goes to the fallback; a new website request opens a fresh inquiry with
// cleared slots; known intents move a completed conversation into free form.
func advanceInformal(state State, intent Intent, lang Language, slots Slots) Transition {
	next := state
	if state == StateCompleted && intent != IntentUnknown {
		next = StateFreeForm
	}

	switch {
	case intent == IntentUnknown, intent == IntentProvideEmail, intent == IntentProvideBudget:
		return Transition{State: state, Intent: IntentUnknown, Slots: slots, Fallback: true}
	case intent == IntentGreeting:
		return Transition{State: next, Intent: intent, Reply: Reply(lang, "reply.greeting"), Slots: slots}
	case intent == IntentWebsiteRequest:
		return Transition{State: StateAwaitingName, Intent: intent, Reply: Reply(lang, "reply.ask_name")}
	case informational(intent):
		return Transition{State: next, Intent: intent, Reply: cannedReply(lang, intent), Slots: slots}
	default:
		return Transition{State: next, Intent: intent, Reply: Reply(lang, "reply.unknown"), Slots: slots}
	}
}
