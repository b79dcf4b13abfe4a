package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics-planner/internal/domain"
	"logistics-planner/internal/platform/obs"
	"logistics-planner/internal/ports"

	"github.com/google/uuid"
)

// Timestamps are stored as ISO-8601 UTC text without a timezone suffix.
// The layout drops trailing fractional zeros on format and accepts a
// missing or shorter fraction on parse.
const timeLayout = "2006-01-02T15:04:05.999999"

const shipmentColumns = `
	id,
	origin,
	destination,
	weight_kg,
	priority,
	status,
	eta,
	carrier,
	tracking_id,
	created_at`

// SQLite-backed implementation of the ShipmentRepository port.
type SqliteShipmentRepository struct{ DB *sql.DB }

func NewSqliteShipmentRepository(db *sql.DB) *SqliteShipmentRepository {
	return &SqliteShipmentRepository{DB: db}
}

// Create a shipment with a fresh 8-char id and status "pending".
// The priority is validated before any write reaches storage.
func (s *SqliteShipmentRepository) Create(
	ctx context.Context,
	origin string,
	destination string,
	weightKg float64,
	priority string,
) (_ string, err error) {
	defer obs.Time(ctx, "shipments.Create")(&err)

	if s.DB == nil {
		return "", errors.New("sqlite shipment repository: DB is nil")
	}

	if err := domain.CheckPriority(priority); err != nil {
		return "", fmt.Errorf("create shipment: %w", err)
	}

	id := uuid.NewString()[:8]
	createdAt := time.Now().UTC()

	query := `
	INSERT INTO shipments (
		id,
		origin,
		destination,
		weight_kg,
		priority,
		status,
		eta,
		carrier,
		tracking_id,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, NULL, NULL, NULL, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		id, origin, destination, weightKg, priority,
		domain.StatusPending, createdAt.Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("create shipment: insert into shipments table: %w", err)
	}

	return id, nil
}

// Assign a carrier to a shipment and force its status to "picked_up".
// Updating an id that does not exist affects zero rows and is not an
// error; that matches the single-user tool's contract.
func (s *SqliteShipmentRepository) AssignCarrier(
	ctx context.Context,
	id string,
	carrier string,
	trackingID string,
	etaDays int,
) (err error) {
	defer obs.Time(ctx, "shipments.AssignCarrier")(&err)

	if s.DB == nil {
		return errors.New("sqlite shipment repository: DB is nil")
	}

	if err := domain.CheckCarrier(carrier); err != nil {
		return fmt.Errorf("assign carrier: %w", err)
	}

	eta := time.Now().UTC().Add(time.Duration(etaDays) * 24 * time.Hour)

	query := `
	UPDATE shipments
	SET carrier = ?, tracking_id = ?, eta = ?, status = ?
	WHERE id = ?;
	`
	_, err = s.DB.ExecContext(ctx, query,
		carrier, trackingID, eta.Format(timeLayout), domain.StatusPickedUp, id,
	)
	if err != nil {
		return fmt.Errorf("assign carrier: update shipments table: %w", err)
	}

	return nil
}

// Update only the status column. Unknown ids affect zero rows, no error.
func (s *SqliteShipmentRepository) UpdateStatus(ctx context.Context, id, status string) (err error) {
	defer obs.Time(ctx, "shipments.UpdateStatus")(&err)

	if s.DB == nil {
		return errors.New("sqlite shipment repository: DB is nil")
	}

	if err := domain.CheckStatus(status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	query := `
	UPDATE shipments
	SET status = ?
	WHERE id = ?;
	`
	if _, err := s.DB.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("update status: update shipments table: %w", err)
	}

	return nil
}

// Return shipments matching the filter, most recently created first.
func (s *SqliteShipmentRepository) List(
	ctx context.Context,
	filter ports.ShipmentFilter,
) (_ []*domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite shipment repository: DB is nil")
	}

	query := `SELECT` + shipmentColumns + `
	FROM shipments
	WHERE 1=1`
	args := make([]any, 0, 2)

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Priority != "" {
		query += " AND priority = ?"
		args = append(args, filter.Priority)
	}

	query += " ORDER BY created_at DESC;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	return collectShipments(rows)
}

// Return the subset of the requested ids that exist, in request order.
// Missing ids are silently skipped.
func (s *SqliteShipmentRepository) GetByIDs(
	ctx context.Context,
	ids []string,
) (_ []*domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.GetByIDs")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite shipment repository: DB is nil")
	}

	if len(ids) == 0 {
		return []*domain.Shipment{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(ids))
	ph := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return []*domain.Shipment{}, nil
	}

	args := make([]any, 0, len(uniq))
	for _, id := range uniq {
		args = append(args, id)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	query := fmt.Sprintf(`SELECT`+shipmentColumns+`
	FROM shipments
	WHERE id IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get shipments by ids: query shipments table: %w", err)
	}
	defer rows.Close()

	found, err := collectShipments(rows)
	if err != nil {
		return nil, fmt.Errorf("get shipments by ids: %w", err)
	}

	byID := make(map[string]*domain.Shipment, len(found))
	for _, sh := range found {
		byID[sh.ID] = sh
	}

	out := make([]*domain.Shipment, 0, len(found))
	for _, id := range uniq {
		if sh, ok := byID[id]; ok {
			out = append(out, sh)
		}
	}

	return out, nil
}

// Return every stored shipment. No ordering guarantee.
func (s *SqliteShipmentRepository) GetAll(ctx context.Context) (_ []*domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.GetAll")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite shipment repository: DB is nil")
	}

	query := `SELECT` + shipmentColumns + `
	FROM shipments;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	return collectShipments(rows)
}

func collectShipments(rows *sql.Rows) ([]*domain.Shipment, error) {
	shipments := make([]*domain.Shipment, 0, 64)
	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		shipments = append(shipments, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return shipments, nil
}

// Field-by-field conversion from a row to a Shipment value.
// Nullable columns map onto pointer fields, never empty-string sentinels.
func scanShipment(rows *sql.Rows) (*domain.Shipment, error) {
	var (
		sh         domain.Shipment
		eta        sql.NullString
		carrier    sql.NullString
		trackingID sql.NullString
		createdAt  string
	)

	err := rows.Scan(
		&sh.ID,
		&sh.Origin,
		&sh.Destination,
		&sh.WeightKg,
		&sh.Priority,
		&sh.Status,
		&eta,
		&carrier,
		&trackingID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	sh.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	if eta.Valid {
		t, err := time.Parse(timeLayout, eta.String)
		if err != nil {
			return nil, fmt.Errorf("parse eta %q: %w", eta.String, err)
		}
		sh.ETA = &t
	}
	if carrier.Valid {
		sh.Carrier = &carrier.String
	}
	if trackingID.Valid {
		sh.TrackingID = &trackingID.String
	}

	return &sh, nil
}
