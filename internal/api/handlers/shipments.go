package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"logistics-planner/internal/api/dto"
	"logistics-planner/internal/domain"
	"logistics-planner/internal/ports"
	"logistics-planner/internal/services"
)

const timeLayout = "2006-01-02T15:04:05.999999"

// ShipmentHandler exposes shipment lifecycle endpoints.
type ShipmentHandler struct {
	Repo ports.ShipmentRepository
}

// List returns shipments, optionally filtered by status and priority.
// Filters are conjunctive; an absent parameter is no constraint.
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := ports.ShipmentFilter{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
	}

	shipments, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		log.Printf("list shipments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListShipmentsResponse{
		Shipments: make([]dto.ShipmentResponse, 0, len(shipments)),
	}
	for _, s := range shipments {
		res.Shipments = append(res.Shipments, toShipmentResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Create registers a new shipment and returns its id.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = "standard"
	}

	id, err := h.Repo.Create(r.Context(), req.Origin, req.Destination, req.WeightKg, priority)
	if err != nil {
		respondRepoError(w, r, "create shipment", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateShipmentResponse{ID: id})
}

// AssignCarrier sets carrier, tracking id and ETA on a shipment,
// forcing its status to picked_up. An unknown id affects zero rows
// and still responds 200; that contract is deliberate.
func (h *ShipmentHandler) AssignCarrier(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req dto.AssignCarrierRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Repo.AssignCarrier(r.Context(), id, req.Carrier, req.TrackingID, req.ETADays); err != nil {
		respondRepoError(w, r, "assign carrier", err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateStatus sets the status column only. Unknown ids respond 200.
func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req dto.UpdateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		respondRepoError(w, r, "update status", err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Batch resolves the requested ids (missing ones skipped) and returns
// carrier/priority groupings for the resulting set.
func (h *ShipmentHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shipments, err := h.Repo.GetByIDs(r.Context(), req.ShipmentIDs)
	if err != nil {
		log.Printf("batch shipments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	summary := services.OptimizeBatch(shipments)

	writeJSON(w, r, http.StatusOK, dto.BatchResponse{
		TotalShipments: summary.TotalShipments,
		ByCarrier:      summary.ByCarrier,
		ByPriority:     summary.ByPriority,
	})
}

func toShipmentResponse(s *domain.Shipment) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		ID:          s.ID,
		Origin:      s.Origin,
		Destination: s.Destination,
		WeightKg:    s.WeightKg,
		Priority:    s.Priority,
		Status:      s.Status,
		ETA:         formatOptionalTime(s.ETA),
		Carrier:     s.Carrier,
		TrackingID:  s.TrackingID,
		CreatedAt:   s.CreatedAt.Format(timeLayout),
	}
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(timeLayout)
	return &formatted
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

// Validation failures carry the allowed values and map to 400;
// everything else is an opaque 500.
func respondRepoError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var invalid *domain.InvalidArgumentError
	if errors.As(err, &invalid) {
		writeError(w, r, http.StatusBadRequest, invalid.Error())
		return
	}

	log.Printf("%s failed: %v", op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
