package scan

import (
	"context"

	"glycoscan/internal/food"
	"glycoscan/internal/llm"
)

// Service runs the scan workflow: session start, remote analysis,
// result capture, fold into history. Text lookups check the static
// catalog first and never touch the network on a hit.
type Service struct {
	client  llm.Client
	catalog *food.Catalog
	store   *Store
}

func NewService(client llm.Client, catalog *food.Catalog, store *Store) *Service {
	return &Service{client: client, catalog: catalog, store: store}
}

// RecognizeImage analyzes a food photo. The imageRef stays on the
// runtime history entry only; the jpeg bytes go to the model.
func (s *Service) RecognizeImage(ctx context.Context, imageRef string, jpeg []byte) (*food.Record, error) {
	s.store.StartScan(imageRef)

	rec, err := s.client.AnalyzeImage(ctx, jpeg)
	if err != nil {
		s.store.SetResult(nil)
		return nil, err
	}

	s.store.SetResult(rec)
	s.store.FinishScan(ctx)
	return rec, nil
}

// RecognizeText analyzes a food by name. An exact catalog match is
// returned directly; only unknown foods go to the model.
func (s *Service) RecognizeText(ctx context.Context, name string) (*food.Record, error) {
	s.store.StartScan("")

	if rec := s.catalog.FindByExactName(name); rec != nil {
		s.store.SetResult(rec)
		s.store.FinishScan(ctx)
		return rec, nil
	}

	rec, err := s.client.AnalyzeText(ctx, name)
	if err != nil {
		s.store.SetResult(nil)
		return nil, err
	}

	s.store.SetResult(rec)
	s.store.FinishScan(ctx)
	return rec, nil
}

// Similar decorates a result with same-category catalog entries.
func (s *Service) Similar(rec food.Record) []food.Record {
	return s.catalog.SimilarFoods(rec.Category, rec.ID, 0)
}

// Alternatives decorates a result with better same-category choices.
func (s *Service) Alternatives(rec food.Record) []food.Record {
	return s.catalog.BetterAlternatives(rec, 0)
}
