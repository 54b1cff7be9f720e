package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/anupamsoni/mfapi/internal/services"
	"github.com/anupamsoni/mfapi/internal/store"
	"github.com/anupamsoni/mfapi/internal/validation"
)

// StockHandler exposes stock listing, detail and timeline endpoints.
type StockHandler struct {
	stockService *services.StockService
	log          zerolog.Logger
}

func NewStockHandler(stockService *services.StockService, log zerolog.Logger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		log:          log,
	}
}

func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/getAllStocks", h.GetAllStocks).Methods("GET")
	router.HandleFunc("/getStockInfo", h.GetStockInfo).Methods("GET")
	router.HandleFunc("/getStockTimeline", h.GetStockTimeline).Methods("GET")
}

// GetAllStocks lists stocks with pagination, sorting and a case-insensitive
// name search.
func (h *StockHandler) GetAllStocks(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	fields := map[string][]string{}

	q := validation.StockQuery{
		Skip:   queryInt64(values, "skip", 0, fields),
		Limit:  queryInt64(values, "limit", 50, fields),
		SortBy: queryString(values, "sort_by", "name"),
		Order:  queryString(values, "order", "asc"),
		Search: strings.TrimSpace(values.Get("search")),
	}
	for key, msgs := range validation.Validate(q) {
		fields[key] = append(fields[key], msgs...)
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	records, total, err := h.stockService.ListStocks(r.Context(), store.StockQuery{
		Search: q.Search,
		SortBy: q.SortBy,
		Order:  q.Order,
		Skip:   q.Skip,
		Limit:  q.Limit,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("listing stocks failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Stocks fetched",
		Records: records,
		Count:   countOf(total),
	})
}

func (h *StockHandler) GetStockInfo(w http.ResponseWriter, r *http.Request) {
	stockID := r.URL.Query().Get("stock_id")
	if stockID == "" {
		writeError(w, http.StatusBadRequest, "stock_id required")
		return
	}

	record, err := h.stockService.GetStockInfo(r.Context(), stockID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Stock not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("stock_id", stockID).Msg("getting stock info failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Stock fetched",
		Records: record,
	})
}

// GetStockTimeline returns the price timeline document for a stock.
// Timelines are keyed by the raw stock id string.
func (h *StockHandler) GetStockTimeline(w http.ResponseWriter, r *http.Request) {
	stockID := r.URL.Query().Get("stock_id")
	if stockID == "" {
		writeError(w, http.StatusBadRequest, "stock_id required")
		return
	}

	record, err := h.stockService.GetStockTimeline(r.Context(), stockID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Timeline not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("stock_id", stockID).Msg("getting stock timeline failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  "success",
		Message: "Timeline fetched",
		Records: record,
	})
}
