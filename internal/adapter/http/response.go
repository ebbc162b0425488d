package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"saathi-bazaar/internal/core/domain"
)

// Field names follow the JSON the web client already consumes.
type campaignResponse struct {
	ID              string                 `json:"id"`
	ItemName        string                 `json:"itemName"`
	Unit            string                 `json:"unit"`
	ClusterLocation string                 `json:"clusterLocation"`
	CurrentQty      decimal.Decimal        `json:"current_qty"`
	TargetQty       decimal.Decimal        `json:"target_qty"`
	RemainingQty    decimal.Decimal        `json:"remaining_qty"`
	IndividualPrice decimal.Decimal        `json:"individualPrice"`
	BulkPrice       decimal.Decimal        `json:"bulkPrice"`
	Deadline        time.Time              `json:"deadline"`
	Status          domain.CampaignStatus  `json:"status"`
	FulfilledAt     *time.Time             `json:"fulfilledAt,omitempty"`
	Contributions   []contributionResponse `json:"contributions"`
}

type contributionResponse struct {
	ID            string          `json:"id"`
	VendorID      string          `json:"vendorId"`
	VendorName    string          `json:"vendorName,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	ContributedAt time.Time       `json:"contributedAt"`
}

type contributeResponse struct {
	Message      string               `json:"message"`
	Fulfilled    bool                 `json:"fulfilled"`
	Contribution contributionResponse `json:"contribution"`
	Campaign     campaignResponse     `json:"campaign"`
}

type cancelResponse struct {
	Message  string           `json:"message"`
	Quantity decimal.Decimal  `json:"quantity"`
	Campaign campaignResponse `json:"campaign"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	out := campaignResponse{
		ID:              c.ID.String(),
		ItemName:        c.ItemName,
		Unit:            c.Unit,
		ClusterLocation: c.ClusterLocation,
		CurrentQty:      c.CurrentQty,
		TargetQty:       c.TargetQty,
		RemainingQty:    c.Remaining(),
		IndividualPrice: c.IndividualPrice,
		BulkPrice:       c.BulkPrice,
		Deadline:        c.Deadline,
		Status:          c.Status,
		FulfilledAt:     c.FulfilledAt,
		Contributions:   make([]contributionResponse, 0, len(c.Contributions)),
	}
	for _, ct := range c.Contributions {
		out.Contributions = append(out.Contributions, toContributionResponse(ct))
	}
	return out
}

func toContributionResponse(ct domain.Contribution) contributionResponse {
	return contributionResponse{
		ID:            ct.ID.String(),
		VendorID:      ct.VendorID,
		VendorName:    ct.VendorName,
		Quantity:      ct.Quantity,
		ContributedAt: ct.ContributedAt,
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errorStatus maps ledger error kinds to HTTP status codes and stable
// error codes.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, domain.ErrInvalidCampaign):
		return http.StatusBadRequest, "invalid_campaign"
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict, "invalid_state"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrExpired):
		return http.StatusGone, "expired"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeError sends err to the client. Internal errors are logged and their
// text is not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	code, kind := errorStatus(err)
	if code == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		writeJSON(w, code, errorResponse{Error: kind})
		return
	}
	h.logger.Debug(op+" rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
	writeJSON(w, code, errorResponse{Error: kind, Message: err.Error()})
}
