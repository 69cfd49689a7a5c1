package observability

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCreate_CountsOutcomesAndPaths(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	p.ObserveCreate(OutcomeCreated)
	p.ObserveCreate(OutcomeRejected, "titulo", "preco")
	p.ObserveCreate(OutcomeRejected, "preco")

	if got := testutil.ToFloat64(p.EventsCreated.WithLabelValues(OutcomeRejected)); got != 2 {
		t.Fatalf("rejected = %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.FieldErrorsTotal.WithLabelValues("preco")); got != 2 {
		t.Fatalf("preco errors = %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.EventsCreated.WithLabelValues(OutcomeCreated)); got != 1 {
		t.Fatalf("created = %v, want 1", got)
	}
}

func TestObserveDB_ClassifiesErrors(t *testing.T) {
	p := NewProm(prometheus.NewRegistry())

	err := p.ObserveDB("eventos.append", func() error {
		return &pgconn.PgError{Code: "23505"}
	})
	if err == nil {
		t.Fatalf("expected error to be returned")
	}

	_ = p.ObserveDB("eventos.list", func() error {
		return errors.New("context deadline exceeded")
	})

	if got := testutil.ToFloat64(p.DbErrorsTotal.WithLabelValues("eventos.append", "unique_violation")); got != 1 {
		t.Fatalf("unique_violation = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.DbErrorsTotal.WithLabelValues("eventos.list", "timeout")); got != 1 {
		t.Fatalf("timeout = %v, want 1", got)
	}
}
