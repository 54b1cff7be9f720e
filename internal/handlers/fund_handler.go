package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/anupamsoni/mfapi/internal/services"
	"github.com/anupamsoni/mfapi/internal/store"
	"github.com/anupamsoni/mfapi/internal/validation"
)

// FundHandler exposes the fund listing and detail endpoints. Paths keep the
// legacy camelCase names the client application already depends on.
type FundHandler struct {
	fundService *services.FundService
	log         zerolog.Logger
}

func NewFundHandler(fundService *services.FundService, log zerolog.Logger) *FundHandler {
	return &FundHandler{
		fundService: fundService,
		log:         log,
	}
}

func (h *FundHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/getAllFunds", h.GetAllFunds).Methods("GET")
	router.HandleFunc("/getFundInfo", h.GetFundInfo).Methods("GET")
}

// GetAllFunds lists funds grouped by business key for one holding date,
// defaulting to the most recent date on record.
func (h *FundHandler) GetAllFunds(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	fields := map[string][]string{}

	q := validation.FundQuery{
		Skip:   queryInt64(values, "skip", 0, fields),
		Limit:  queryInt64(values, "limit", 50, fields),
		SortBy: queryString(values, "sort_by", "holding_count"),
		Order:  queryString(values, "order", "desc"),
		Date:   values.Get("date"),
	}
	for key, msgs := range validation.Validate(q) {
		fields[key] = append(fields[key], msgs...)
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	records, total, err := h.fundService.ListFunds(r.Context(), store.FundQuery{
		Date:   q.Date,
		SortBy: q.SortBy,
		Order:  q.Order,
		Skip:   q.Skip,
		Limit:  q.Limit,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No records found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("listing funds failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Funds fetched",
		Records: records,
		Count:   countOf(total),
	})
}

// GetFundInfo returns the latest holding snapshot for a fund business key
// with its holding-count history attached.
func (h *FundHandler) GetFundInfo(w http.ResponseWriter, r *http.Request) {
	fundID := r.URL.Query().Get("fund_id")
	date := r.URL.Query().Get("date")

	if fundID == "" {
		writeError(w, http.StatusBadRequest, "fund_id required")
		return
	}

	record, err := h.fundService.GetFundInfo(r.Context(), fundID, date)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Fund not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("fund_id", fundID).Msg("getting fund info failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Fund info fetched",
		Records: record,
	})
}
