package dialogue

import "github.com/example/kwonka/internal/models"

// Admin input tokens.
const (
	TokenMonitoring  = "Order monitoring"
	TokenStatistics  = "Statistics"
	TokenAllOrders   = "All orders"
	TokenDelayed     = "Delayed orders"
	TokenCheckOrders = "Check orders"
	TokenMainMenu    = "Main menu"
	TokenBack        = "Back"
	TokenDailyReport = "Daily report"
)

// AdminTable returns the administrator dialogue. Entering monitoring
// subscribes the session to autonomous escalations; only the explicit
// return to the main menu unsubscribes it. A plain /start does not
// touch the registry.
func AdminTable() *Table {
	return &Table{
		Role:          models.RoleAdmin,
		Initial:       StateStart,
		Restart:       TokenRestart,
		RestartPrompt: PromptAdminWelcome,
		States: map[State][]Rule{
			StateStart: {
				{Match: MatchToken, Token: TokenMonitoring, Effect: EffectSubscribe, Next: StateMonitoring, Prompt: PromptMonitoringMenu},
				{Match: MatchToken, Token: TokenStatistics, Next: StateStatistics, Prompt: PromptStatsMenu},
			},
			StateMonitoring: {
				{Match: MatchToken, Token: TokenAllOrders, Next: StateAllOrders, Prompt: PromptAllOrders},
				{Match: MatchToken, Token: TokenDelayed, Next: StateDelayedOrders, Prompt: PromptDelayedOrders},
				{Match: MatchToken, Token: TokenCheckOrders, Effect: EffectCheckNow, Prompt: PromptMonitoringMenu},
				{Match: MatchToken, Token: TokenMainMenu, Effect: EffectUnsubscribe, Next: StateStart, Prompt: PromptAdminWelcome},
			},
			StateAllOrders: {
				{Match: MatchToken, Token: TokenBack, Next: StateMonitoring, Prompt: PromptMonitoringMenu},
			},
			StateDelayedOrders: {
				{Match: MatchToken, Token: TokenBack, Next: StateMonitoring, Prompt: PromptMonitoringMenu},
				{Match: MatchAction, Token: ActionNotifyShop, Effect: EffectNotifyBarista, Prompt: PromptNotifySent},
			},
			StateStatistics: {
				{Match: MatchToken, Token: TokenDailyReport, Prompt: PromptDailyStats},
				{Match: MatchToken, Token: TokenMainMenu, Next: StateStart, Prompt: PromptAdminWelcome},
			},
		},
		Prompts: map[State]PromptKind{
			StateStart:         PromptAdminWelcome,
			StateMonitoring:    PromptMonitoringMenu,
			StateAllOrders:     PromptAllOrders,
			StateDelayedOrders: PromptDelayedOrders,
			StateStatistics:    PromptStatsMenu,
		},
	}
}
