package app

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
	"github.com/hothifafawaz/restoflow/pkg/domain/service"
	"github.com/hothifafawaz/restoflow/pkg/infrastructure/event"
	"github.com/hothifafawaz/restoflow/pkg/infrastructure/memory"
)

// selfOrderNote marks orders placed by guests from the self-service flow.
const selfOrderNote = "Self-ordered by guest"

// App is the owned application-state aggregate: it wires the seeded
// in-memory stores, the domain services and the advisory collaborator.
// Presentation reads through it; nothing else holds mutable state.
type App struct {
	Catalog service.CatalogService
	Tables  service.TableService
	Orders  service.OrderService
	Advisor model.Advisor
}

func New(adv model.Advisor, logger *log.Logger) *App {
	dispatcher := event.NewLogDispatcher(logger)

	catalogRepo := memory.NewCatalogRepository(memory.SeedCatalog()...)
	tableRepo := memory.NewTableRepository(memory.SeedTables()...)
	orderRepo := memory.NewOrderRepository()

	return &App{
		Catalog: service.NewCatalogService(catalogRepo, dispatcher),
		Tables:  service.NewTableService(tableRepo, dispatcher),
		Orders:  service.NewOrderService(orderRepo, tableRepo, dispatcher),
		Advisor: adv,
	}
}

// SubmitCart sends a waiter cart to the kitchen. The advisory text is
// gathered first; only then does the synchronous transition run, so no
// partial mutation is ever observable mid-flow. A slow or failed advisory
// call degrades to an empty note and the order still goes through.
func (a *App) SubmitCart(ctx context.Context, tableID int, cart *model.Cart) (*model.Order, error) {
	if cart.Empty() {
		return nil, service.ErrEmptyOrder
	}

	note := a.Advisor.CharacterizeOrder(ctx, cartSummary(cart))

	order, err := a.Orders.PlaceOrder(tableID, cart.Lines(), note)
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return order, nil
}

// SelfOrder places a guest's own cart, tagged with a fixed note instead
// of an advisory call.
func (a *App) SelfOrder(tableID int, cart *model.Cart) (*model.Order, error) {
	if cart.Empty() {
		return nil, service.ErrEmptyOrder
	}

	order, err := a.Orders.PlaceOrder(tableID, cart.Lines(), selfOrderNote)
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return order, nil
}

// PairingSuggestion asks the chef assistant for an item from
// targetCategory that complements the cart. Lines whose source item has
// been deleted from the catalog are simply skipped.
func (a *App) PairingSuggestion(ctx context.Context, cart *model.Cart, targetCategory string) string {
	selected := make([]model.MenuItem, 0)
	for _, line := range cart.Lines() {
		item, err := a.Catalog.Find(line.ItemID)
		if err != nil {
			continue
		}
		selected = append(selected, *item)
	}
	return a.Advisor.SuggestPairing(ctx, selected, targetCategory)
}

// AnswerMenuQuestion routes a free-text guest question to the advisor
// with the full current catalog as context.
func (a *App) AnswerMenuQuestion(ctx context.Context, question string) string {
	items, err := a.Catalog.Items()
	if err != nil {
		items = nil
	}
	return a.Advisor.AnswerMenuQuestion(ctx, question, items)
}

func cartSummary(cart *model.Cart) string {
	names := make([]string, 0)
	for _, line := range cart.Lines() {
		names = append(names, line.Name)
	}
	return strings.Join(names, ", ")
}
