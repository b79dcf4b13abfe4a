package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"logistics-planner/internal/domain"
	"logistics-planner/internal/ports"

	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *SqliteShipmentRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return NewSqliteShipmentRepository(db)
}

func TestCreateAndListRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "NYC", "LAX", 12.5, "express")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(id) != 8 {
		t.Fatalf("id = %q, want 8 chars", id)
	}

	shipments, err := repo.List(ctx, ports.ShipmentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(shipments) != 1 {
		t.Fatalf("got %d shipments, want 1", len(shipments))
	}

	s := shipments[0]
	if s.ID != id {
		t.Fatalf("id = %q, want %q", s.ID, id)
	}
	if s.Origin != "NYC" || s.Destination != "LAX" {
		t.Fatalf("route = %q -> %q, want NYC -> LAX", s.Origin, s.Destination)
	}
	if s.WeightKg != 12.5 {
		t.Fatalf("weight = %v, want 12.5", s.WeightKg)
	}
	if s.Priority != "express" {
		t.Fatalf("priority = %q, want express", s.Priority)
	}
	if s.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", s.Status)
	}
	if s.ETA != nil || s.Carrier != nil || s.TrackingID != nil {
		t.Fatalf("optional fields set on fresh shipment: eta=%v carrier=%v tracking=%v",
			s.ETA, s.Carrier, s.TrackingID)
	}
	if s.CreatedAt.IsZero() {
		t.Fatal("created_at is zero")
	}
}

func TestCreateInvalidPriorityPersistsNothing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "NYC", "LAX", 1.0, "same-day")
	if err == nil {
		t.Fatal("expected an error for invalid priority")
	}

	var invalid *domain.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *domain.InvalidArgumentError", err)
	}
	if invalid.Field != "priority" {
		t.Fatalf("field = %q, want priority", invalid.Field)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("got %d shipments after failed create, want 0", len(all))
	}
}

func TestAssignCarrierOverwritesStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "CHI", "MIA", 3.2, "standard")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateStatus(ctx, id, domain.StatusException); err != nil {
		t.Fatalf("update status: %v", err)
	}

	before := time.Now().UTC()
	if err := repo.AssignCarrier(ctx, id, "fedex", "TRK-001", 3); err != nil {
		t.Fatalf("assign carrier: %v", err)
	}
	after := time.Now().UTC()

	shipments, err := repo.GetByIDs(ctx, []string{id})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(shipments) != 1 {
		t.Fatalf("got %d shipments, want 1", len(shipments))
	}

	s := shipments[0]
	// Assignment always forces picked_up, even from exception.
	if s.Status != domain.StatusPickedUp {
		t.Fatalf("status = %q, want picked_up", s.Status)
	}
	if s.Carrier == nil || *s.Carrier != "fedex" {
		t.Fatalf("carrier = %v, want fedex", s.Carrier)
	}
	if s.TrackingID == nil || *s.TrackingID != "TRK-001" {
		t.Fatalf("tracking id = %v, want TRK-001", s.TrackingID)
	}
	if s.ETA == nil {
		t.Fatal("eta not set")
	}

	wantLow := before.Add(3 * 24 * time.Hour).Add(-time.Second)
	wantHigh := after.Add(3 * 24 * time.Hour).Add(time.Second)
	if s.ETA.Before(wantLow) || s.ETA.After(wantHigh) {
		t.Fatalf("eta = %v, want within [%v, %v]", s.ETA, wantLow, wantHigh)
	}
}

func TestAssignCarrierInvalidCarrier(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.AssignCarrier(ctx, "whatever", "pigeon-post", "TRK-002", 1)
	if err == nil {
		t.Fatal("expected an error for invalid carrier")
	}

	var invalid *domain.InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T, want *domain.InvalidArgumentError", err)
	}
}

func TestMutationsOnUnknownIDAreSilent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.AssignCarrier(ctx, "missing1", "ups", "TRK-003", 2); err != nil {
		t.Fatalf("assign carrier on unknown id: %v", err)
	}
	if err := repo.UpdateStatus(ctx, "missing1", domain.StatusDelivered); err != nil {
		t.Fatalf("update status on unknown id: %v", err)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("got %d shipments, want 0", len(all))
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, "SEA", "POR", 1.0, "standard")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateStatus(ctx, id, "teleported"); err == nil {
		t.Fatal("expected an error for invalid status")
	}

	shipments, err := repo.GetByIDs(ctx, []string{id})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if shipments[0].Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending after rejected update", shipments[0].Status)
	}
}

func TestListFilterConjunction(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	type seed struct {
		priority string
		status   string
	}
	seeds := []seed{
		{"standard", domain.StatusPending},
		{"standard", domain.StatusDelivered},
		{"express", domain.StatusPending},
		{"express", domain.StatusDelivered},
	}

	var wantID string
	for _, sd := range seeds {
		id, err := repo.Create(ctx, "BOS", "ATL", 2.0, sd.priority)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if sd.status != domain.StatusPending {
			if err := repo.UpdateStatus(ctx, id, sd.status); err != nil {
				t.Fatalf("update status: %v", err)
			}
		}
		if sd.priority == "express" && sd.status == domain.StatusDelivered {
			wantID = id
		}
	}

	got, err := repo.List(ctx, ports.ShipmentFilter{Status: domain.StatusDelivered, Priority: "express"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d shipments, want 1", len(got))
	}
	if got[0].ID != wantID {
		t.Fatalf("id = %q, want %q", got[0].ID, wantID)
	}
}

func TestListOrdersByCreatedAtDescending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		id, err := repo.Create(ctx, "DEN", "STL", 1.0, "standard")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond)
	}

	got, err := repo.List(ctx, ports.ShipmentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d shipments, want 3", len(got))
	}

	for i := 0; i < 3; i++ {
		if got[i].ID != ids[2-i] {
			t.Fatalf("position %d = %q, want %q (newest first)", i, got[i].ID, ids[2-i])
		}
	}
}

func TestGetByIDsSkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id1, err := repo.Create(ctx, "MIN", "DET", 1.0, "standard")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id2, err := repo.Create(ctx, "DET", "CLE", 1.0, "overnight")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByIDs(ctx, []string{id1, "does-not-exist", id2})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d shipments, want 2", len(got))
	}
	if got[0].ID != id1 || got[1].ID != id2 {
		t.Fatalf("ids = [%q %q], want [%q %q]", got[0].ID, got[1].ID, id1, id2)
	}
}

func TestGetByIDsEmptyInput(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d shipments, want 0", len(got))
	}
}
