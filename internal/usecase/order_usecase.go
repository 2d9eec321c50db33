package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/domain/scheduling"
	"fotoeventos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrQuoteNotApproved   = errors.New("quote not approved")
	ErrOrderAlreadyExists = errors.New("an order already exists for this quote")
	ErrOrderNotEditable   = errors.New("order is not active")
)

// DepositRatio is the share of the order total charged up front when the
// booking is confirmed.
const DepositRatio = 0.30

// IOrderUseCase exposes order operations. Orders are only ever created from
// an approved quote and carry their own copy of the booking records; edits
// run through the same strong-change confirmation gate as quote updates.

type IOrderUseCase interface {
	CreateFromQuote(ctx context.Context, quoteID string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, draft BookingDraft, confirmed bool) (entities.Order, *scheduling.DiffReport, error)
	CompleteByID(ctx context.Context, id string) (entities.Order, error)
	CancelByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	quoteRepo interfaces.IQuoteRepository
	catalog   interfaces.IServiceCatalogRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, quoteRepo interfaces.IQuoteRepository, catalog interfaces.IServiceCatalogRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, quoteRepo: quoteRepo, catalog: catalog}
}

func (u *OrderUseCase) CreateFromQuote(ctx context.Context, quoteID string) (entities.Order, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Order{}, ErrInvalidQuoteID
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Order{}, err
	}
	if q.ID == "" {
		return entities.Order{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAprovado {
		return entities.Order{}, ErrQuoteNotApproved
	}

	existing, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID != "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		QuoteID:     q.ID,
		ClientName:  q.ClientName,
		EventName:   q.EventName,
		EventType:   q.EventType,
		Notes:       q.Notes,
		DayCount:    q.DayCount,
		WorkDates:   q.WorkDates,
		Locations:   q.Locations,
		Items:       q.Items,
		Assignments: q.Assignments,
		Total:       q.Total,
		Deposit:     depositFor(q.Total),
		Status:      entities.OrderStatusAtivo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, id string, draft BookingDraft, confirmed bool) (entities.Order, *scheduling.DiffReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, nil, ErrInvalidOrderID
	}

	stored, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if stored.ID == "" {
		return entities.Order{}, nil, ErrOrderNotFound
	}
	if stored.Status != entities.OrderStatusAtivo {
		return entities.Order{}, nil, ErrOrderNotEditable
	}

	if err := resolveCatalogItems(ctx, u.catalog, draft.Items); err != nil {
		return entities.Order{}, nil, err
	}

	session, report, err := replayDraft(storedHeader(stored.ClientName, stored.EventName, stored.EventType, stored.Notes), stored.WorkDates, stored.Locations, stored.Items, stored.Assignments, draft)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if report.HasStrongChange && !confirmed {
		return entities.Order{}, report, ErrConfirmationRequired
	}

	stored.ClientName = draft.ClientName
	stored.EventName = draft.EventName
	stored.EventType = draft.EventType
	stored.Notes = draft.Notes
	stored.DayCount = session.DayCount()
	stored.WorkDates = session.WorkDates()
	stored.Locations = session.Locations()
	stored.Items = session.Items()
	stored.Assignments = session.Assignments()
	stored.Total = session.Total()
	stored.Deposit = depositFor(stored.Total)
	stored.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, stored)
	if err != nil {
		return entities.Order{}, nil, err
	}
	return updated, report, nil
}

func (u *OrderUseCase) CompleteByID(ctx context.Context, id string) (entities.Order, error) {
	return u.updateStatusByID(ctx, id, entities.OrderStatusConcluido)
}

func (u *OrderUseCase) CancelByID(ctx context.Context, id string) (entities.Order, error) {
	return u.updateStatusByID(ctx, id, entities.OrderStatusCancelado)
}

func (u *OrderUseCase) updateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// depositFor rounds to cents so the stored deposit matches what the payment
// gateway is asked to charge.
func depositFor(total float64) float64 {
	return math.Round(total*DepositRatio*100) / 100
}
