package postgres

import (
	"context"

	"github.com/geocoder89/eventos/internal/domain/event"
	"github.com/geocoder89/eventos/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

// constructor function

func NewEventsRepo(pool *pgxpool.Pool, prom *observability.Prom) *EventsRepo {
	return &EventsRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *EventsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *EventsRepo) Append(ctx context.Context, v event.ValidatedEvent) (event.Event, error) {
	e := event.NewFromValidated(v)

	err := r.observe("eventos.append", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO eventos(id, titulo, cat, data, hora, local, preco, img, descricao, created_at)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			e.ID, e.Titulo, e.Cat, e.Data, e.Hora, e.Local, e.Preco, e.Img, e.Desc, e.CreatedAt)
		return err
	})

	if err != nil {
		return event.Event{}, err
	}

	return e, nil
}

func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	output := make([]event.Event, 0)

	err := r.observe("eventos.list", func() error {
		// seq keeps insertion order
		rows, err := r.pool.Query(ctx,
			`SELECT id, titulo, cat, data, hora, local, preco, img, descricao, created_at
			FROM eventos
			ORDER BY seq ASC`)
		if err != nil {
			return err
		}

		defer rows.Close()

		for rows.Next() {
			var e event.Event

			err = rows.Scan(&e.ID, &e.Titulo, &e.Cat, &e.Data, &e.Hora, &e.Local, &e.Preco, &e.Img, &e.Desc, &e.CreatedAt)
			if err != nil {
				return err
			}

			e.Data = e.Data.UTC()
			e.CreatedAt = e.CreatedAt.UTC()
			output = append(output, e)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

func (r *EventsRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
