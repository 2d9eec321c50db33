package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/domain/scheduling"
	"fotoeventos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrCatalogServiceNotFound = errors.New("catalog service not found")
	ErrCatalogServiceInactive = errors.New("catalog service is not active")
	ErrConfirmationRequired   = errors.New("update carries strong changes and requires operator confirmation")
)

// BookingDraft is the full session payload a caller submits when creating or
// updating a quote/order. It is parsed and validated once, at this boundary,
// by the scheduling engine.
type BookingDraft struct {
	ClientName  string
	EventName   string
	EventType   string
	Notes       string
	WorkDates   []entities.WorkDate
	Locations   []entities.Location
	Items       []entities.ServiceLineItem
	Assignments []entities.Assignment
}

func (d BookingDraft) header() scheduling.Header {
	return scheduling.Header{
		ClientName: d.ClientName,
		EventName:  d.EventName,
		EventType:  d.EventType,
		Notes:      d.Notes,
	}
}

// IQuoteUseCase exposes quote operations.
//
// UpdateQuote implements the strong-change confirmation gate: the stored
// quote is loaded as the diff baseline, the draft replaces it in the engine,
// and a strong difference without confirmed=true aborts the update with
// ErrConfirmationRequired plus the diff report for the caller to render.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, draft BookingDraft) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, draft BookingDraft, confirmed bool) (entities.Quote, *scheduling.DiffReport, error)
	ApproveByID(ctx context.Context, id string) (entities.Quote, error)
	RejectByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	catalog interfaces.IServiceCatalogRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog interfaces.IServiceCatalogRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalog: catalog}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, draft BookingDraft) (entities.Quote, error) {
	if err := resolveCatalogItems(ctx, u.catalog, draft.Items); err != nil {
		return entities.Quote{}, err
	}

	session, err := scheduling.LoadSession(draft.header(), draft.WorkDates, draft.Locations, draft.Items, draft.Assignments)
	if err != nil {
		return entities.Quote{}, err
	}
	session.AutoFill()
	if err := session.ValidateCoverage(); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		ClientName:  draft.ClientName,
		EventName:   draft.EventName,
		EventType:   draft.EventType,
		Notes:       draft.Notes,
		DayCount:    session.DayCount(),
		WorkDates:   session.WorkDates(),
		Locations:   session.Locations(),
		Items:       session.Items(),
		Assignments: session.Assignments(),
		Total:       session.Total(),
		Status:      entities.QuoteStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, draft BookingDraft, confirmed bool) (entities.Quote, *scheduling.DiffReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, nil, ErrInvalidQuoteID
	}

	stored, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if stored.ID == "" {
		return entities.Quote{}, nil, ErrQuoteNotFound
	}

	if err := resolveCatalogItems(ctx, u.catalog, draft.Items); err != nil {
		return entities.Quote{}, nil, err
	}

	session, report, err := replayDraft(storedHeader(stored.ClientName, stored.EventName, stored.EventType, stored.Notes), stored.WorkDates, stored.Locations, stored.Items, stored.Assignments, draft)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	if report.HasStrongChange && !confirmed {
		return entities.Quote{}, report, ErrConfirmationRequired
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
	stored.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, stored)
	if err != nil {
		return entities.Quote{}, nil, err
	}
	return updated, report, nil
}

func (u *QuoteUseCase) ApproveByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusAprovado)
}

func (u *QuoteUseCase) RejectByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusRejeitado)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelado)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// resolveCatalogItems validates every line item's catalog reference and pins
// its base price (and currency) to the catalog values, so the discount floor
// cannot be dodged by sending a low base price.
func resolveCatalogItems(ctx context.Context, catalog interfaces.IServiceCatalogRepository, items []entities.ServiceLineItem) error {
	for i := range items {
		svc, err := catalog.GetByID(ctx, items[i].CatalogID)
		if err != nil {
			return err
		}
		if svc.ID == "" {
			return ErrCatalogServiceNotFound
		}
		if !svc.Active {
			return ErrCatalogServiceInactive
		}
		items[i].BasePrice = svc.BasePrice
		if items[i].Currency == "" {
			items[i].Currency = svc.Currency
		}
	}
	return nil
}

func storedHeader(clientName, eventName, eventType, notes string) scheduling.Header {
	return scheduling.Header{ClientName: clientName, EventName: eventName, EventType: eventType, Notes: notes}
}

// replayDraft loads the stored state as the baseline session, replaces it
// with the draft, runs auto-fill plus the submit-time coverage check, and
// diffs the result against the baseline.
func replayDraft(header scheduling.Header, dates []entities.WorkDate, locations []entities.Location, items []entities.ServiceLineItem, assignments []entities.Assignment, draft BookingDraft) (*scheduling.Session, *scheduling.DiffReport, error) {
	session, err := scheduling.LoadSession(header, dates, locations, items, assignments)
	if err != nil {
		return nil, nil, err
	}
	if err := session.ReplaceState(draft.header(), draft.WorkDates, draft.Locations, draft.Items, draft.Assignments); err != nil {
		return nil, nil, err
	}
	session.AutoFill()
	if err := session.ValidateCoverage(); err != nil {
		return nil, nil, err
	}

	report, err := scheduling.Diff(session.Baseline(), session.Snapshot())
	if err != nil {
		return nil, nil, err
	}
	return session, report, nil
}
