package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/anupamsoni/mfapi/internal/store"
)

// FundService answers fund listing and detail queries over the holding
// snapshot collection.
type FundService struct {
	funds store.Funds
}

func NewFundService(funds store.Funds) *FundService {
	return &FundService{funds: funds}
}

// ListFunds groups holding snapshots by fund for one date and returns the
// page plus the total snapshot count for that date. An empty date selects
// the most recent one on record; store.ErrNotFound means there is no data
// at all.
func (s *FundService) ListFunds(ctx context.Context, q store.FundQuery) ([]bson.M, int64, error) {
	if q.Date == "" {
		date, err := s.funds.LatestDate(ctx)
		if err != nil {
			return nil, 0, err
		}
		q.Date = date
	}

	total, err := s.funds.CountByDate(ctx, q.Date)
	if err != nil {
		return nil, 0, err
	}

	records, err := s.funds.ListByDate(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetFundInfo returns the latest holding snapshot for a fund business key,
// with a fund_count history of {date, holding_count} pairs attached.
// date narrows the lookup to a single snapshot date when non-empty.
func (s *FundService) GetFundInfo(ctx context.Context, uniqueID, date string) (bson.M, error) {
	holdings, err := s.funds.FindHoldings(ctx, uniqueID, date)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, store.ErrNotFound
	}

	counts := make([]bson.M, 0, len(holdings))
	for _, h := range holdings {
		counts = append(counts, bson.M{
			"date":          h["date"],
			"holding_count": h["holding_count"],
		})
	}

	// Holdings come back newest first.
	record := holdings[0]
	record["fund_count"] = counts
	return record, nil
}
