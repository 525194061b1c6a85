package identify

import (
	"context"

	"path-mapper/feature/catalog"
	"path-mapper/feature/gamepath"

	"go.uber.org/zap"
)

// Service serves identification requests.
type Service struct {
	identifier *Identifier
	workers    int
	logger     *zap.Logger
}

// NewService creates a new identification service.
func NewService(identifier *Identifier, workers int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		identifier: identifier,
		workers:    workers,
		logger:     logger,
	}
}

// Identify labels every path, preserving input order.
func (s *Service) Identify(ctx context.Context, paths []string) ([]Identified, error) {
	return RunBatch(ctx, s.identifier, paths, BatchOptions{
		Workers: s.workers,
		Logger:  s.logger,
	})
}

// Item looks up a single item.
func (s *Service) Item(set, weaponType, variant uint16, slot gamepath.EquipSlot) (catalog.Item, bool) {
	return s.identifier.Item(set, weaponType, variant, slot)
}
