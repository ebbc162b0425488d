package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
)

type contributeRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

type legacyContributeRequest struct {
	BulkOrderID string          `json:"bulkOrderId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type createCampaignRequest struct {
	ItemName        string          `json:"itemName"`
	Unit            string          `json:"unit"`
	ClusterLocation string          `json:"clusterLocation"`
	TargetQty       decimal.Decimal `json:"target_qty"`
	CurrentQty      decimal.Decimal `json:"current_qty"`
	IndividualPrice decimal.Decimal `json:"individualPrice"`
	BulkPrice       decimal.Decimal `json:"bulkPrice"`
	Deadline        time.Time       `json:"deadline"`
}

// handleListOpen returns open campaigns ordered by deadline. The optional
// `cluster` query parameter restricts the list to one cluster.
func (h *Handler) handleListOpen(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListOpenCampaigns(r.Context(), port.ListFilter{Cluster: r.URL.Query().Get("cluster")})
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleCreate lets an operator open a new campaign.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_body"})
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		ItemName:        req.ItemName,
		Unit:            req.Unit,
		ClusterLocation: req.ClusterLocation,
		TargetQty:       req.TargetQty,
		CurrentQty:      req.CurrentQty,
		IndividualPrice: req.IndividualPrice,
		BulkPrice:       req.BulkPrice,
		Deadline:        req.Deadline,
	})
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_body"})
		return
	}
	h.contribute(w, r, id, req.Quantity)
}

// handleContributeLegacy accepts the body shape {bulkOrderId, quantity}
// posted by the existing web client.
func (h *Handler) handleContributeLegacy(w http.ResponseWriter, r *http.Request) {
	var req legacyContributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_body"})
		return
	}
	id, ok := h.campaignID(w, r, req.BulkOrderID)
	if !ok {
		return
	}
	h.contribute(w, r, id, req.Quantity)
}

func (h *Handler) contribute(w http.ResponseWriter, r *http.Request, id uuid.UUID, qty decimal.Decimal) {
	vendor, _ := VendorFrom(r.Context())
	res, err := h.svc.Contribute(r.Context(), port.ContributeReq{
		CampaignID: id,
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Quantity:   qty,
	})
	if err != nil {
		h.writeError(w, r, "contribute", err)
		return
	}
	msg := "Your contribution has been added successfully!"
	if res.Fulfilled {
		msg = "Your contribution completed the bulk order!"
	}
	writeJSON(w, http.StatusOK, contributeResponse{
		Message:      msg,
		Fulfilled:    res.Fulfilled,
		Contribution: toContributionResponse(res.Contribution),
		Campaign:     toCampaignResponse(res.Campaign),
	})
}

// handleCancel withdraws all of the caller's contributions.
func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.campaignID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	vendor, _ := VendorFrom(r.Context())
	res, err := h.svc.CancelContribution(r.Context(), id, vendor.ID)
	if err != nil {
		h.writeError(w, r, "cancel contribution", err)
		return
	}
	writeJSON(w, http.StatusOK, cancelResponse{
		Message:  fmt.Sprintf("Removed %d contribution(s).", len(res.Removed)),
		Quantity: res.Quantity,
		Campaign: toCampaignResponse(res.Campaign),
	})
}

func (h *Handler) campaignID(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeError(w, r, "parse campaign id", fmt.Errorf("%w: malformed campaign id %q", domain.ErrInvalidArgument, raw))
		return uuid.Nil, false
	}
	return id, true
}
