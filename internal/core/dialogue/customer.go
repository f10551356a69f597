package dialogue

import "github.com/example/kwonka/internal/models"

// Customer input tokens. Prompts offer these as reply options; the
// table only advances on an exact match.
const (
	TokenRestart     = "/start"
	TokenStart       = "Start"
	TokenWantCoffee  = "I want coffee"
	TokenAddMilk     = "Plant milk"
	TokenAddSyrup    = "Syrup"
	TokenRemoveMilk  = "Remove milk"
	TokenRemoveSyrup = "Remove syrup"
	TokenNoAddons    = "No add-ons"
	TokenDone        = "Done"
	TokenConfirm     = "Yes"
	TokenModify      = "Modify order"
	TokenCancel      = "Cancel"
	TokenPay         = "Pay"
	TokenPaid        = "I have paid"
	TokenNewOrder    = "New order"
	TokenPickedUp    = "Picked up"
)

// CustomerTable returns the customer ordering dialogue: a linear flow
// from greeting to payment with a bounded add-on loop, a modify
// back-edge and a cancel reset at confirmation.
func CustomerTable() *Table {
	return &Table{
		Role:          models.RoleCustomer,
		Initial:       StateStart,
		Restart:       TokenRestart,
		RestartPrompt: PromptWelcome,
		Globals: []Rule{
			// "Picked up" closes the latest READY order from any state.
			{Match: MatchToken, Token: TokenPickedUp, Effect: EffectPickup, Prompt: PromptPickupThanks},
			// "New order" restarts selection with a clean slate.
			{Match: MatchToken, Token: TokenNewOrder, Reset: true, Next: StateSelectShop, Prompt: PromptShops},
		},
		States: map[State][]Rule{
			StateStart: {
				{Match: MatchToken, Token: TokenStart, Next: StateIntro, Prompt: PromptIntro},
			},
			StateIntro: {
				{Match: MatchToken, Token: TokenWantCoffee, Next: StateSelectShop, Prompt: PromptShops},
			},
			StateSelectShop: {
				{Match: MatchShop, Save: SelShop, Next: StateSelectDrink, Prompt: PromptDrinks},
			},
			StateSelectDrink: {
				{Match: MatchDrink, Save: SelDrink, Next: StateSelectSize, Prompt: PromptSizes},
			},
			StateSelectSize: {
				{Match: MatchSize, Save: SelSize, Next: StateSelectAddons, Prompt: PromptAddons},
			},
			StateSelectAddons: {
				{Match: MatchToken, Token: TokenAddMilk, Next: StateSelectMilk, Prompt: PromptMilks},
				{Match: MatchToken, Token: TokenAddSyrup, Next: StateSelectSyrup, Prompt: PromptSyrups},
				{Match: MatchToken, Token: TokenRemoveMilk, Clear: []string{SelMilk}, Prompt: PromptAddons},
				{Match: MatchToken, Token: TokenRemoveSyrup, Clear: []string{SelSyrup}, Prompt: PromptAddons},
				{Match: MatchToken, Token: TokenNoAddons, Clear: []string{SelMilk, SelSyrup}, Next: StateConfirm, Prompt: PromptSummary},
				{Match: MatchToken, Token: TokenDone, Next: StateConfirm, Prompt: PromptSummary},
			},
			StateSelectMilk: {
				{Match: MatchMilk, Save: SelMilk, Next: StateSelectAddons, Prompt: PromptAddons},
			},
			StateSelectSyrup: {
				{Match: MatchSyrup, Save: SelSyrup, Next: StateSelectAddons, Prompt: PromptAddons},
			},
			StateConfirm: {
				{Match: MatchToken, Token: TokenConfirm, Next: StatePaymentInit, Prompt: PromptPaymentInit},
				{Match: MatchToken, Token: TokenModify, Next: StateSelectAddons, Prompt: PromptAddons},
				{Match: MatchToken, Token: TokenCancel, Reset: true, Prompt: PromptWelcome},
			},
			StatePaymentInit: {
				{Match: MatchToken, Token: TokenPay, Next: StatePaymentConfirm, Prompt: PromptPaymentConfirm},
			},
			StatePaymentConfirm: {
				{Match: MatchToken, Token: TokenPaid, Effect: EffectCommitOrder, Next: StateCompleted, Prompt: PromptOrderPlaced},
				// The simulated gateway re-prompts forever on anything else.
				{Match: MatchAny, Prompt: PromptPaymentRetry},
			},
			StateCompleted: {},
		},
		Prompts: map[State]PromptKind{
			StateStart:          PromptWelcome,
			StateIntro:          PromptIntro,
			StateSelectShop:     PromptShops,
			StateSelectDrink:    PromptDrinks,
			StateSelectSize:     PromptSizes,
			StateSelectAddons:   PromptAddons,
			StateSelectMilk:     PromptMilks,
			StateSelectSyrup:    PromptSyrups,
			StateConfirm:        PromptSummary,
			StatePaymentInit:    PromptPaymentInit,
			StatePaymentConfirm: PromptPaymentConfirm,
			StateCompleted:      PromptOrderPlaced,
		},
	}
}
