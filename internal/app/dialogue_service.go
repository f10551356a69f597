package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/kwonka/internal/core/dialogue"
	"github.com/example/kwonka/internal/core/menu"
	"github.com/example/kwonka/internal/ctxutil"
	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/ports/secondary"
)

// DialogueServiceImpl implements the DialogueService interface. It advances
// the per-actor state machine under the session lock, then executes the
// requested effects and renders the reply prompt with live data.
type DialogueServiceImpl struct {
	sessions   secondary.SessionStore
	orders     primary.OrderService
	shops      primary.ShopService
	escalation primary.EscalationService
	stats      primary.StatsService
	notifier   *Notifier

	tables map[models.Role]*dialogue.Table
}

// NewDialogueService creates a new DialogueService with injected dependencies.
func NewDialogueService(sessions secondary.SessionStore, orders primary.OrderService, shops primary.ShopService, escalation primary.EscalationService, stats primary.StatsService, notifier *Notifier) *DialogueServiceImpl {
	return &DialogueServiceImpl{
		sessions:   sessions,
		orders:     orders,
		shops:      shops,
		escalation: escalation,
		stats:      stats,
		notifier:   notifier,
		tables: map[models.Role]*dialogue.Table{
			models.RoleCustomer: dialogue.CustomerTable(),
			models.RoleBarista:  dialogue.BaristaTable(),
			models.RoleAdmin:    dialogue.AdminTable(),
		},
	}
}

// shopEnv adapts the shop service to the dialogue matching environment.
type shopEnv struct {
	ctx   context.Context
	shops primary.ShopService
}

func (e shopEnv) ShopCodeByName(name string) (string, bool) {
	shops, err := e.shops.ListShops(e.ctx)
	if err != nil {
		return "", false
	}
	for _, s := range shops {
		if s.Name == name {
			return s.Code, true
		}
	}
	return "", false
}

// turnOutcome carries what this turn's effects produced, for rendering.
type turnOutcome struct {
	placed   *primary.Order
	pickedUp *primary.Order
	notice   string
}

// HandleMessage processes one inbound message and returns the reply prompt.
func (s *DialogueServiceImpl) HandleMessage(ctx context.Context, role models.Role, chatID int64, text string) (models.Prompt, error) {
	table, ok := s.tables[role]
	if !ok {
		return models.Prompt{}, fmt.Errorf("unknown role %s", role)
	}

	ctx = ctxutil.WithActor(ctx, fmt.Sprintf("%s:%d", role, chatID))
	env := shopEnv{ctx: ctx, shops: s.shops}

	var result dialogue.Result
	var snapshot models.Session
	err := s.sessions.With(role, chatID, func(sess *models.Session) error {
		result = table.Handle(sess, text, env)
		snapshot = *sess
		sel := make(map[string]string, len(sess.Selections))
		for k, v := range sess.Selections {
			sel[k] = v
		}
		snapshot.Selections = sel
		return nil
	})
	if err != nil {
		return models.Prompt{}, err
	}

	outcome := s.executeEffects(ctx, chatID, &snapshot, result)

	prompt, err := s.render(ctx, &snapshot, result, outcome)
	if err != nil {
		return models.Prompt{}, err
	}
	if !result.Recognized && prompt.Notice == "" {
		prompt.Notice = "Please use one of the offered options."
	}
	return prompt, nil
}

// executeEffects runs the side effects the turn requested. Effect failures
// become notices on the reply rather than errors: the dialogue must keep
// going even when an action no longer applies.
func (s *DialogueServiceImpl) executeEffects(ctx context.Context, chatID int64, sess *models.Session, result dialogue.Result) turnOutcome {
	var out turnOutcome

	for _, effect := range result.Effects {
		switch effect.Kind {
		case dialogue.EffectCommitOrder:
			order, err := s.orders.CreateOrder(ctx, primary.CreateOrderRequest{
				CustomerID: chatID,
				ShopCode:   sess.Selections[dialogue.SelShop],
				Drink:      sess.Selections[dialogue.SelDrink],
				Size:       sess.Selections[dialogue.SelSize],
				MilkType:   sess.Selections[dialogue.SelMilk],
				SyrupType:  sess.Selections[dialogue.SelSyrup],
			})
			if err != nil {
				out.notice = "Something went wrong placing your order. Send /start to try again."
				continue
			}
			out.placed = order

		case dialogue.EffectPickup:
			ready, err := s.orders.ListOrders(ctx, primary.OrderFilters{
				CustomerID: chatID,
				Statuses:   []string{models.OrderStatusReady},
				Limit:      1,
			})
			if err != nil || len(ready) == 0 {
				out.notice = "You have no order waiting for pickup."
				continue
			}
			order, err := s.orders.PickUpOrder(ctx, ready[0].OrderNumber)
			if err != nil {
				out.notice = "Something went wrong closing your order."
				continue
			}
			out.pickedUp = order

		case dialogue.EffectTakeOrder:
			if _, err := s.orders.AcceptOrder(ctx, effect.Payload); err != nil {
				out.notice = fmt.Sprintf("Order #%s can no longer be taken.", effect.Payload)
			}

		case dialogue.EffectReadyOrder:
			if _, err := s.orders.CompleteOrder(ctx, effect.Payload); err != nil {
				out.notice = fmt.Sprintf("Order #%s can no longer be marked ready.", effect.Payload)
			}

		case dialogue.EffectSubscribe:
			s.escalation.Subscribe(chatID)

		case dialogue.EffectUnsubscribe:
			s.escalation.Unsubscribe(chatID)

		case dialogue.EffectNotifyBarista:
			order, err := s.orders.GetOrder(ctx, effect.Payload)
			if err != nil {
				out.notice = fmt.Sprintf("Order #%s not found.", effect.Payload)
				continue
			}
			sent := s.notifier.NotifyBarista(ctx, order.ShopCode,
				fmt.Sprintf("Reminder from admin: order #%s is waiting. Please take it.", order.OrderNumber))
			if !sent {
				out.notice = fmt.Sprintf("No barista is on shift at %s right now.", order.ShopName)
			}

		case dialogue.EffectCheckNow:
			if _, err := s.escalation.CheckOrders(ctx); err != nil {
				out.notice = "Order check failed, try again."
			}
		}
	}

	return out
}

func (s *DialogueServiceImpl) render(ctx context.Context, sess *models.Session, result dialogue.Result, outcome turnOutcome) (models.Prompt, error) {
	p := models.Prompt{Notice: outcome.notice}

	switch result.Prompt {
	case dialogue.PromptWelcome:
		p.Text = "Welcome to One Shott coffee! Ready when you are."
		p.Options = []string{dialogue.TokenStart}

	case dialogue.PromptIntro:
		p.Text = "We make coffee to order and text you the moment it's ready."
		p.Options = []string{dialogue.TokenWantCoffee}

	case dialogue.PromptShops:
		shops, err := s.shops.ListShops(ctx)
		if err != nil {
			return p, err
		}
		p.Text = "Where would you like to pick up your order?"
		for _, shop := range shops {
			p.Options = append(p.Options, shop.Name)
		}

	case dialogue.PromptDrinks:
		p.Text = "What are we making for you?"
		p.Options = menu.Drinks()

	case dialogue.PromptSizes:
		p.Text = "Which size?"
		p.Options = menu.SizesFor(sess.Selections[dialogue.SelDrink])

	case dialogue.PromptAddons:
		p.Text = s.addonsText(sess)
		p.Options = s.addonsOptions(sess)

	case dialogue.PromptMilks:
		p.Text = "Which milk?"
		p.Options = menu.Milks()

	case dialogue.PromptSyrups:
		p.Text = "Which syrup?"
		p.Options = menu.Syrups()

	case dialogue.PromptSummary:
		text, err := s.summaryText(ctx, sess)
		if err != nil {
			return p, err
		}
		p.Text = text
		p.Options = []string{dialogue.TokenConfirm, dialogue.TokenModify, dialogue.TokenCancel}

	case dialogue.PromptPaymentInit:
		total, err := sessionTotal(sess)
		if err != nil {
			return p, err
		}
		p.Text = fmt.Sprintf("Your total is %d tenge.", total)
		p.Options = []string{dialogue.TokenPay}

	case dialogue.PromptPaymentConfirm:
		p.Text = "Follow the payment link, then confirm here."
		p.Options = []string{dialogue.TokenPaid}

	case dialogue.PromptPaymentRetry:
		p.Notice = "We haven't seen your payment yet."
		p.Text = "Follow the payment link, then confirm here."
		p.Options = []string{dialogue.TokenPaid}

	case dialogue.PromptOrderPlaced:
		if outcome.placed != nil {
			p.Text = fmt.Sprintf("Order #%s placed! We'll text you when it's ready at %s.",
				outcome.placed.OrderNumber, outcome.placed.ShopName)
		} else {
			p.Text = "Your order is placed. We'll text you when it's ready."
		}
		p.Options = []string{dialogue.TokenNewOrder, dialogue.TokenPickedUp}

	case dialogue.PromptPickupThanks:
		if outcome.pickedUp != nil {
			p.Text = fmt.Sprintf("Order #%s closed. Enjoy your coffee!", outcome.pickedUp.OrderNumber)
		} else {
			p.Text = "Enjoy your coffee!"
		}
		p.Options = []string{dialogue.TokenNewOrder}

	case dialogue.PromptBaristaWelcome:
		p.Text = "Barista console. Start your shift to see orders."
		p.Options = []string{dialogue.TokenStartWork}

	case dialogue.PromptBaristaShops:
		shops, err := s.shops.ListShops(ctx)
		if err != nil {
			return p, err
		}
		p.Text = "Which location are you working at?"
		for _, shop := range shops {
			p.Options = append(p.Options, shop.Name)
		}

	case dialogue.PromptPendingOrders:
		if err := s.renderQueue(ctx, &p, sess.ShopCode, models.OrderStatusPending,
			"Pending orders", dialogue.ActionTakeOrder, "Take"); err != nil {
			return p, err
		}
		p.Options = []string{dialogue.TokenRefresh, dialogue.TokenInProgress, dialogue.TokenChangeShop}

	case dialogue.PromptInProgressOrders:
		if err := s.renderQueue(ctx, &p, sess.ShopCode, models.OrderStatusInPreparation,
			"Orders in progress", dialogue.ActionReadyOrder, "Ready"); err != nil {
			return p, err
		}
		p.Options = []string{dialogue.TokenRefresh, dialogue.TokenInProgress, dialogue.TokenChangeShop}

	case dialogue.PromptOrderDetails:
		order, err := s.orders.GetOrder(ctx, result.PromptArg)
		if err != nil {
			p.Notice = fmt.Sprintf("Order #%s not found.", result.PromptArg)
			break
		}
		p.Text = orderDetails(order)

	case dialogue.PromptAdminWelcome:
		p.Text = "Admin console."
		p.Options = []string{dialogue.TokenMonitoring, dialogue.TokenStatistics}

	case dialogue.PromptMonitoringMenu:
		p.Text = "Order monitoring. Escalations for delayed orders arrive here automatically."
		p.Options = []string{dialogue.TokenAllOrders, dialogue.TokenDelayed, dialogue.TokenCheckOrders, dialogue.TokenMainMenu}

	case dialogue.PromptAllOrders:
		orders, err := s.orders.ListOrders(ctx, primary.OrderFilters{Limit: 20})
		if err != nil {
			return p, err
		}
		if len(orders) == 0 {
			p.Text = "No orders yet."
		} else {
			lines := make([]string, 0, len(orders)+1)
			lines = append(lines, "Latest orders:")
			for _, o := range orders {
				lines = append(lines, fmt.Sprintf("#%s  %s  %s  %d tenge  %s", o.OrderNumber, o.Drink, o.Status, o.TotalPrice, o.ShopName))
			}
			p.Text = strings.Join(lines, "\n")
		}
		p.Options = []string{dialogue.TokenBack}

	case dialogue.PromptDelayedOrders, dialogue.PromptNotifySent:
		if result.Prompt == dialogue.PromptNotifySent && p.Notice == "" {
			p.Notice = "Barista notified."
		}
		delayed, err := s.escalation.DelayedOrders(ctx)
		if err != nil {
			return p, err
		}
		if len(delayed) == 0 {
			p.Text = "No delayed orders. All queues are healthy."
		} else {
			lines := make([]string, 0, len(delayed)+1)
			lines = append(lines, "Delayed orders:")
			for _, d := range delayed {
				mark := ""
				if d.Critical {
					mark = "  CRITICAL"
				}
				lines = append(lines, fmt.Sprintf("#%s  waiting %d min  %s%s", d.Order.OrderNumber, d.WaitMinutes, d.Order.ShopCode, mark))
				p.Actions = append(p.Actions, models.Action{
					Label: fmt.Sprintf("Notify barista about #%s", d.Order.OrderNumber),
					Data:  dialogue.ActionNotifyShop + ":" + d.Order.OrderNumber,
				})
			}
			p.Text = strings.Join(lines, "\n")
		}
		p.Options = []string{dialogue.TokenBack}

	case dialogue.PromptStatsMenu:
		p.Text = "Statistics."
		p.Options = []string{dialogue.TokenDailyReport, dialogue.TokenMainMenu}

	case dialogue.PromptDailyStats:
		stats, err := s.stats.DailyStats(ctx, "")
		if err != nil {
			return p, err
		}
		lines := []string{
			fmt.Sprintf("Report for %s", stats.Date),
			fmt.Sprintf("Completed orders: %d, revenue %d tenge", stats.TotalOrders, stats.TotalTenge),
		}
		for _, shop := range stats.Shops {
			lines = append(lines, fmt.Sprintf("%s: %d completed, %d tenge",
				shop.ShopName, shop.Orders, shop.TotalTenge))
		}
		p.Text = strings.Join(lines, "\n")
		p.Options = []string{dialogue.TokenDailyReport, dialogue.TokenMainMenu}

	default:
		p.Text = "Send /start to begin."
	}

	return p, nil
}

// renderQueue fills the prompt with a shop's order queue and the per-order
// action buttons for the barista views.
func (s *DialogueServiceImpl) renderQueue(ctx context.Context, p *models.Prompt, shopCode, status, title, verb, label string) error {
	orders, err := s.orders.ListOrders(ctx, primary.OrderFilters{
		ShopCode: shopCode,
		Statuses: []string{status},
	})
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		p.Text = title + ": none right now."
		return nil
	}

	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, title+":")
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf("#%s  %s, %s  %d tenge", o.OrderNumber, o.Drink, o.Size, o.TotalPrice))
		p.Actions = append(p.Actions,
			models.Action{Label: fmt.Sprintf("%s #%s", label, o.OrderNumber), Data: verb + ":" + o.OrderNumber},
			models.Action{Label: fmt.Sprintf("View #%s", o.OrderNumber), Data: dialogue.ActionViewOrder + ":" + o.OrderNumber},
		)
	}
	p.Text = strings.Join(lines, "\n")
	return nil
}

func (s *DialogueServiceImpl) addonsText(sess *models.Session) string {
	parts := []string{fmt.Sprintf("%s, %s", sess.Selections[dialogue.SelDrink], sess.Selections[dialogue.SelSize])}
	if milk := sess.Selections[dialogue.SelMilk]; milk != "" {
		parts = append(parts, milk+" milk")
	}
	if syrup := sess.Selections[dialogue.SelSyrup]; syrup != "" {
		parts = append(parts, syrup+" syrup")
	}
	return "Your drink so far: " + strings.Join(parts, ", ") + ". Any add-ons?"
}

func (s *DialogueServiceImpl) addonsOptions(sess *models.Session) []string {
	options := []string{dialogue.TokenAddMilk, dialogue.TokenAddSyrup}
	if sess.Selections[dialogue.SelMilk] != "" {
		options = append(options, dialogue.TokenRemoveMilk)
	}
	if sess.Selections[dialogue.SelSyrup] != "" {
		options = append(options, dialogue.TokenRemoveSyrup)
	}
	return append(options, dialogue.TokenDone, dialogue.TokenNoAddons)
}

func (s *DialogueServiceImpl) summaryText(ctx context.Context, sess *models.Session) (string, error) {
	total, err := sessionTotal(sess)
	if err != nil {
		return "", err
	}

	pickup := sess.Selections[dialogue.SelShop]
	if shop, err := s.shops.GetShop(ctx, pickup); err == nil {
		pickup = shop.Name
	}

	lines := []string{
		"Your order:",
		fmt.Sprintf("%s, %s", sess.Selections[dialogue.SelDrink], sess.Selections[dialogue.SelSize]),
	}
	if milk := sess.Selections[dialogue.SelMilk]; milk != "" {
		lines = append(lines, milk+" milk")
	}
	if syrup := sess.Selections[dialogue.SelSyrup]; syrup != "" {
		lines = append(lines, syrup+" syrup")
	}
	lines = append(lines,
		"Pickup: "+pickup,
		fmt.Sprintf("Total: %d tenge", total),
		"Confirm?")
	return strings.Join(lines, "\n"), nil
}

func sessionTotal(sess *models.Session) (int64, error) {
	return menu.Price(
		sess.Selections[dialogue.SelDrink],
		sess.Selections[dialogue.SelSize],
		sess.Selections[dialogue.SelMilk] != "",
		sess.Selections[dialogue.SelSyrup] != "",
	)
}

func orderDetails(o *primary.Order) string {
	lines := []string{
		fmt.Sprintf("Order #%s  (%s)", o.OrderNumber, o.Status),
		fmt.Sprintf("%s, %s", o.Drink, o.Size),
	}
	if o.MilkType != "" {
		lines = append(lines, o.MilkType+" milk")
	}
	if o.SyrupType != "" {
		lines = append(lines, o.SyrupType+" syrup")
	}
	lines = append(lines,
		fmt.Sprintf("Total: %d tenge", o.TotalPrice),
		"Pickup: "+o.ShopName,
		"Placed: "+o.CreatedAt)
	return strings.Join(lines, "\n")
}
