package dialogue

import "github.com/example/kwonka/internal/models"

// Barista input tokens.
const (
	TokenStartWork    = "Start work"
	TokenRefresh      = "Refresh orders"
	TokenInProgress   = "Orders in progress"
	TokenChangeShop   = "Change location"
	ActionTakeOrder   = "take"  // take:<order number>
	ActionReadyOrder  = "ready" // ready:<order number>
	ActionViewOrder   = "view"  // view:<order number>
	ActionNotifyShop  = "notify"
)

// BaristaTable returns the barista dialogue: bind a shop, then flip
// between the pending and in-progress queues with per-order accept and
// complete actions.
func BaristaTable() *Table {
	return &Table{
		Role:          models.RoleBarista,
		Initial:       StateStart,
		Restart:       TokenRestart,
		RestartPrompt: PromptBaristaWelcome,
		States: map[State][]Rule{
			StateStart: {
				{Match: MatchToken, Token: TokenStartWork, Next: StateBindShop, Prompt: PromptBaristaShops},
			},
			StateBindShop: {
				// MatchShop binds sess.ShopCode; orders are scoped to it from here on.
				{Match: MatchShop, Next: StateViewingPending, Prompt: PromptPendingOrders},
			},
			StateViewingPending: {
				{Match: MatchToken, Token: TokenRefresh, Prompt: PromptPendingOrders},
				{Match: MatchToken, Token: TokenInProgress, Next: StateViewingInProgress, Prompt: PromptInProgressOrders},
				{Match: MatchToken, Token: TokenChangeShop, Next: StateBindShop, Prompt: PromptBaristaShops},
				{Match: MatchAction, Token: ActionViewOrder, Prompt: PromptOrderDetails},
				{Match: MatchAction, Token: ActionTakeOrder, Effect: EffectTakeOrder, Prompt: PromptPendingOrders},
			},
			StateViewingInProgress: {
				{Match: MatchToken, Token: TokenRefresh, Next: StateViewingPending, Prompt: PromptPendingOrders},
				{Match: MatchToken, Token: TokenInProgress, Prompt: PromptInProgressOrders},
				{Match: MatchToken, Token: TokenChangeShop, Next: StateBindShop, Prompt: PromptBaristaShops},
				{Match: MatchAction, Token: ActionViewOrder, Prompt: PromptOrderDetails},
				{Match: MatchAction, Token: ActionReadyOrder, Effect: EffectReadyOrder, Prompt: PromptInProgressOrders},
			},
		},
		Prompts: map[State]PromptKind{
			StateStart:             PromptBaristaWelcome,
			StateBindShop:          PromptBaristaShops,
			StateViewingPending:    PromptPendingOrders,
			StateViewingInProgress: PromptInProgressOrders,
		},
	}
}
