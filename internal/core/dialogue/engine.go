// Package dialogue contains the pure turn-based dialogue engine. A role's
// conversation is a transition table keyed by (state, normalized input);
// handling a turn yields the next state, the effects to request, and the
// prompt to render. The engine never touches order storage or transports:
// effects are executed and prompts are rendered by the application layer.
package dialogue

import (
	"strings"

	"github.com/example/kwonka/internal/core/menu"
	"github.com/example/kwonka/internal/models"
)

// State is a role-specific dialogue state.
type State string

// Customer states.
const (
	StateStart          State = "start"
	StateIntro          State = "intro"
	StateSelectShop     State = "select_shop"
	StateSelectDrink    State = "select_drink"
	StateSelectSize     State = "select_size"
	StateSelectAddons   State = "select_addons"
	StateSelectMilk     State = "select_milk"
	StateSelectSyrup    State = "select_syrup"
	StateConfirm        State = "confirm"
	StatePaymentInit    State = "payment_init"
	StatePaymentConfirm State = "payment_confirm"
	StateCompleted      State = "completed"
)

// Barista states. StateStart is shared.
const (
	StateBindShop          State = "bind_shop"
	StateViewingPending    State = "viewing_pending"
	StateViewingInProgress State = "viewing_in_progress"
)

// Admin states. StateStart is shared.
const (
	StateMonitoring    State = "monitoring"
	StateAllOrders     State = "all_orders"
	StateDelayedOrders State = "delayed_orders"
	StateStatistics    State = "statistics"
)

// Selection store keys.
const (
	SelShop  = "shop"
	SelDrink = "drink"
	SelSize  = "size"
	SelMilk  = "milk"
	SelSyrup = "syrup"
)

// MatchKind decides how a rule's token is compared against the input.
type MatchKind int

const (
	// MatchToken matches the input verbatim against Rule.Token.
	MatchToken MatchKind = iota
	// MatchShop matches any active shop name known to the Env.
	MatchShop
	// MatchDrink matches any catalog drink.
	MatchDrink
	// MatchSize matches a size available for the drink already selected.
	MatchSize
	// MatchMilk matches any catalog milk type.
	MatchMilk
	// MatchSyrup matches any catalog syrup type.
	MatchSyrup
	// MatchAction matches "<verb>:<payload>" inputs with Rule.Token as verb.
	MatchAction
	// MatchAny matches every input. Place it last in a state's rule list.
	MatchAny
)

// EffectKind names a side effect the dialogue requests from the
// application layer. The engine itself mutates nothing but the session.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectCommitOrder creates a PENDING order from the session's selections.
	EffectCommitOrder
	// EffectPickup completes the customer's most recent READY order.
	EffectPickup
	// EffectTakeOrder moves an order PENDING -> IN_PREPARATION. Payload: order number.
	EffectTakeOrder
	// EffectReadyOrder moves an order IN_PREPARATION -> READY. Payload: order number.
	EffectReadyOrder
	// EffectSubscribe registers the admin session for escalation broadcasts.
	EffectSubscribe
	// EffectUnsubscribe removes the admin session from escalation broadcasts.
	EffectUnsubscribe
	// EffectNotifyBarista forwards a delay escalation to the order's shop
	// barista. Payload: order number.
	EffectNotifyBarista
	// EffectCheckNow runs one escalation scan immediately.
	EffectCheckNow
)

// Effect is a requested side effect plus its payload (usually an order number).
type Effect struct {
	Kind    EffectKind
	Payload string
}

// PromptKind names the prompt the application layer should render after a
// turn. Rendering may need live data (shop lists, pending orders), which is
// why the table only carries the kind.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptWelcome
	PromptIntro
	PromptShops
	PromptDrinks
	PromptSizes
	PromptAddons
	PromptMilks
	PromptSyrups
	PromptSummary
	PromptPaymentInit
	PromptPaymentConfirm
	PromptPaymentRetry
	PromptOrderPlaced
	PromptPickupThanks
	PromptBaristaWelcome
	PromptBaristaShops
	PromptPendingOrders
	PromptInProgressOrders
	PromptOrderDetails
	PromptAdminWelcome
	PromptMonitoringMenu
	PromptAllOrders
	PromptDelayedOrders
	PromptNotifySent
	PromptStatsMenu
	PromptDailyStats
)

// Rule is one row of a transition table.
type Rule struct {
	Match  MatchKind
	Token  string // exact token for MatchToken, verb for MatchAction
	Next   State  // zero value means stay in the current state
	Effect EffectKind
	Prompt PromptKind
	Save   string   // selection key the matched value is stored under
	Clear  []string // selection keys removed on this transition
	Reset  bool     // reset the whole session before entering Next
}

// Table is a complete role dialogue: its rules, per-state re-render
// prompts, and the globally handled tokens.
type Table struct {
	Role          models.Role
	Initial       State
	Restart       string // global reset token, handled before any lookup
	RestartPrompt PromptKind
	Globals       []Rule
	States        map[State][]Rule
	// Prompts maps each state to the prompt re-rendered when input is
	// not recognized.
	Prompts map[State]PromptKind
}

// Env supplies the one piece of live data the tables need for matching:
// the active shop directory.
type Env interface {
	// ShopCodeByName resolves an active shop display name to its code.
	ShopCodeByName(name string) (string, bool)
}

// Result is the outcome of one dialogue turn.
type Result struct {
	State      State
	Effects    []Effect
	Prompt     PromptKind
	PromptArg  string // order number for per-order prompts
	Recognized bool
}

// Handle runs one turn against the table. The session is mutated in
// place (state and selections); everything else is returned as requests.
func (t *Table) Handle(sess *models.Session, input string, env Env) Result {
	input = strings.TrimSpace(input)

	if input == t.Restart {
		sess.Reset()
		sess.State = string(t.Initial)
		return Result{State: t.Initial, Prompt: t.RestartPrompt, Recognized: true}
	}

	state := State(sess.State)
	if _, ok := t.States[state]; !ok {
		state = t.Initial
		sess.State = string(state)
	}

	for _, rule := range t.Globals {
		if value, payload, ok := t.match(rule, state, sess, input, env); ok {
			return t.apply(rule, sess, state, value, payload)
		}
	}

	for _, rule := range t.States[state] {
		if value, payload, ok := t.match(rule, state, sess, input, env); ok {
			return t.apply(rule, sess, state, value, payload)
		}
	}

	// Unrecognized input: re-render the current state's prompt, never advance.
	return Result{State: state, Prompt: t.Prompts[state], Recognized: false}
}

// match returns the value to save and the effect payload when the rule
// accepts the input.
func (t *Table) match(rule Rule, state State, sess *models.Session, input string, env Env) (value, payload string, ok bool) {
	switch rule.Match {
	case MatchToken:
		if input == rule.Token {
			return input, "", true
		}
	case MatchShop:
		if env == nil {
			return "", "", false
		}
		if code, found := env.ShopCodeByName(input); found {
			return code, code, true
		}
	case MatchDrink:
		if menu.IsDrink(input) {
			return input, "", true
		}
	case MatchSize:
		for _, size := range menu.SizesFor(sess.Selections[SelDrink]) {
			if input == size {
				return input, "", true
			}
		}
	case MatchMilk:
		if menu.IsMilk(input) {
			return input, "", true
		}
	case MatchSyrup:
		if menu.IsSyrup(input) {
			return input, "", true
		}
	case MatchAction:
		verb, rest, found := strings.Cut(input, ":")
		if found && verb == rule.Token && rest != "" {
			return rest, rest, true
		}
	case MatchAny:
		return input, "", true
	}
	return "", "", false
}

func (t *Table) apply(rule Rule, sess *models.Session, state State, value, payload string) Result {
	if rule.Reset {
		sess.Reset()
	}
	for _, key := range rule.Clear {
		delete(sess.Selections, key)
	}
	if rule.Save != "" {
		sess.Selections[rule.Save] = value
	}
	if sess.Role == models.RoleBarista && rule.Match == MatchShop {
		sess.ShopCode = value
	}

	next := state
	if rule.Reset {
		next = t.Initial
	}
	if rule.Next != "" {
		next = rule.Next
	}
	sess.State = string(next)

	result := Result{State: next, Prompt: rule.Prompt, PromptArg: payload, Recognized: true}
	if rule.Effect != EffectNone {
		result.Effects = append(result.Effects, Effect{Kind: rule.Effect, Payload: payload})
	}
	return result
}
