package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/geocoder89/eventos/internal/cache"
	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/geocoder89/eventos/internal/observability"
	"github.com/gin-gonic/gin"
)

const listCacheKey = "eventos:list:v1"

// EventsRepository is the event collection: append-only, insertion ordered.
type EventsRepository interface {
	Append(ctx context.Context, v event.ValidatedEvent) (event.Event, error)
	List(ctx context.Context) ([]event.Event, error)
}

type EventsHandler struct {
	repo      EventsRepository
	validate  func(event.RawEventInput) event.Result
	log       *slog.Logger
	prom      *observability.Prom
	listCache *cache.Cache[[]event.Event]
}

type Option func(*EventsHandler)

func WithLogger(log *slog.Logger) Option {
	return func(h *EventsHandler) { h.log = log }
}

func WithProm(p *observability.Prom) Option {
	return func(h *EventsHandler) { h.prom = p }
}

func WithListCache(ttl time.Duration) Option {
	return func(h *EventsHandler) { h.listCache = cache.New[[]event.Event](ttl) }
}

// WithValidator swaps the field validator, mostly for tests.
func WithValidator(fn func(event.RawEventInput) event.Result) Option {
	return func(h *EventsHandler) { h.validate = fn }
}

func NewEventsHandler(repo EventsRepository, opts ...Option) *EventsHandler {
	h := &EventsHandler{
		repo:     repo,
		validate: event.Validate,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Create runs one create request through validation and storage. The
// collection is only touched after every field rule passed.
func (h *EventsHandler) Create(ctx context.Context, raw event.RawEventInput) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			h.log.ErrorContext(ctx, "create_event_panic", "panic", r)
			h.observe(observability.OutcomeFaulted)
			resp = internalResponse()
		}
	}()

	res := h.validate(raw)

	if !res.OK() {
		paths := make([]string, 0, len(res.Errors))
		for _, fe := range res.Errors {
			paths = append(paths, fe.Path)
		}

		h.log.DebugContext(ctx, "create_event_rejected", "fields", paths)
		h.observe(observability.OutcomeRejected, paths...)

		return validationResponse(res.Errors)
	}

	e, err := h.repo.Append(ctx, res.Event)

	if err != nil {
		h.log.ErrorContext(ctx, "create_event_failed", "err", err)
		h.observe(observability.OutcomeFaulted)

		return internalResponse()
	}

	if h.listCache != nil {
		h.listCache.Clear()
	}

	h.log.InfoContext(ctx, "event_created", "event_id", e.ID, "cat", e.Cat)
	h.observe(observability.OutcomeCreated)

	return createdResponse()
}

func (h *EventsHandler) observe(outcome string, paths ...string) {
	if h.prom != nil {
		h.prom.ObserveCreate(outcome, paths...)
	}
}

func (h *EventsHandler) CreateEvent(ctx *gin.Context) {
	var raw event.RawEventInput

	if !BindJSON(ctx, &raw) {
		return
	}

	Respond(ctx, h.Create(ctx.Request.Context(), raw))
}

func (h *EventsHandler) ListEvents(ctx *gin.Context) {
	events, err := h.list(ctx.Request.Context())

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list_events_failed", "err", err)
		RespondInternal(ctx)

		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"items": events,
		"count": len(events),
	})
}

func (h *EventsHandler) list(ctx context.Context) ([]event.Event, error) {
	if h.listCache == nil {
		return h.repo.List(ctx)
	}

	if cached, ok := h.listCache.Get(listCacheKey); ok {
		return cached, nil
	}

	gen := h.listCache.Generation()

	events, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	h.listCache.SetIfGeneration(listCacheKey, events, gen)

	return events, nil
}
