package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anupamsoni/mfapi/internal/store"
)

// StockService answers stock listing, detail and price timeline queries.
type StockService struct {
	stocks    store.Stocks
	timelines store.Timelines
}

func NewStockService(stocks store.Stocks, timelines store.Timelines) *StockService {
	return &StockService{stocks: stocks, timelines: timelines}
}

func (s *StockService) ListStocks(ctx context.Context, q store.StockQuery) ([]bson.M, int64, error) {
	return s.stocks.List(ctx, q)
}

func (s *StockService) GetStockInfo(ctx context.Context, id string) (bson.M, error) {
	return s.stocks.FindByID(ctx, id)
}

func (s *StockService) GetStockTimeline(ctx context.Context, id string) (bson.M, error) {
	return s.timelines.FindByID(ctx, id)
}
