package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"customer_intel_backend/platform/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Dataset file names inside the data directory.
const (
	historicalLeadsFile    = "leads_historicos.csv"
	clientBehaviorFile     = "clientes_comportamiento.csv"
	clientTransactionsFile = "clientes_transacciones.csv"
)

// Store owns the historical datasets for the process lifetime. It is
// constructed once in main and passed by reference to consumers; there is no
// ambient package-level state.
//
// Each dataset is loaded at most once per process: concurrent first-access is
// collapsed through singleflight and the loaded snapshot is published through
// an atomic pointer, so every caller observes the same immutable slice after
// the first successful load. Failed loads are not cached and will be retried
// on the next call.
type Store struct {
	dir string
	log *logger.Logger

	sf singleflight.Group

	leads    atomic.Pointer[[]HistoricalLead]
	behavior atomic.Pointer[[]ClientBehavior]
	txns     atomic.Pointer[[]ClientTransaction]
}

// NewStore creates a dataset store reading from the given directory.
func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// HistoricalLeads returns the memoized historical lead dataset.
func (s *Store) HistoricalLeads(ctx context.Context) ([]HistoricalLead, error) {
	if v := s.leads.Load(); v != nil {
		return *v, nil
	}

	res, err, _ := s.sf.Do(historicalLeadsFile, func() (interface{}, error) {
		if v := s.leads.Load(); v != nil {
			return *v, nil
		}
		rows, err := s.readTable(ctx, historicalLeadsFile)
		if err != nil {
			return nil, err
		}
		recs := make([]HistoricalLead, 0, len(rows))
		for _, row := range rows {
			recs = append(recs, historicalLeadFromRow(row))
		}
		s.leads.Store(&recs)
		s.log.DatasetLoaded(historicalLeadsFile, len(recs))
		return recs, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]HistoricalLead), nil
}

// ClientBehavior returns the memoized client behavior dataset.
func (s *Store) ClientBehavior(ctx context.Context) ([]ClientBehavior, error) {
	if v := s.behavior.Load(); v != nil {
		return *v, nil
	}

	res, err, _ := s.sf.Do(clientBehaviorFile, func() (interface{}, error) {
		if v := s.behavior.Load(); v != nil {
			return *v, nil
		}
		rows, err := s.readTable(ctx, clientBehaviorFile)
		if err != nil {
			return nil, err
		}
		recs := make([]ClientBehavior, 0, len(rows))
		for _, row := range rows {
			recs = append(recs, clientBehaviorFromRow(row))
		}
		s.behavior.Store(&recs)
		s.log.DatasetLoaded(clientBehaviorFile, len(recs))
		return recs, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]ClientBehavior), nil
}

// ClientTransactions returns the memoized client transactions dataset.
func (s *Store) ClientTransactions(ctx context.Context) ([]ClientTransaction, error) {
	if v := s.txns.Load(); v != nil {
		return *v, nil
	}

	res, err, _ := s.sf.Do(clientTransactionsFile, func() (interface{}, error) {
		if v := s.txns.Load(); v != nil {
			return *v, nil
		}
		rows, err := s.readTable(ctx, clientTransactionsFile)
		if err != nil {
			return nil, err
		}
		recs := make([]ClientTransaction, 0, len(rows))
		for _, row := range rows {
			recs = append(recs, clientTransactionFromRow(row))
		}
		s.txns.Store(&recs)
		s.log.DatasetLoaded(clientTransactionsFile, len(recs))
		return recs, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]ClientTransaction), nil
}

// ChurnInputs loads both churn datasets, fetching them concurrently on first
// access.
func (s *Store) ChurnInputs(ctx context.Context) ([]ClientBehavior, []ClientTransaction, error) {
	var (
		behavior []ClientBehavior
		txns     []ClientTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		behavior, err = s.ClientBehavior(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		txns, err = s.ClientTransactions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return behavior, txns, nil
}

func (s *Store) readTable(ctx context.Context, name string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		s.log.DatasetError(name, err)
		return nil, fmt.Errorf("open dataset %s: %w", name, err)
	}
	defer f.Close()

	rows, err := ParseTable(f)
	if err != nil {
		s.log.DatasetError(name, err)
		return nil, fmt.Errorf("parse dataset %s: %w", name, err)
	}
	return rows, nil
}
