package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"guruvela-be/internal/config"
	"guruvela-be/internal/constant"
	"guruvela-be/internal/dto"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/internal/repository/contract"
	"guruvela-be/internal/repository/specification"
	"guruvela-be/pkg/content"
	"guruvela-be/pkg/prediction"
	"guruvela-be/pkg/query"
)

type IPredictorService interface {
	PredictJosaa(ctx context.Context, request *dto.JosaaPredictRequest) (*dto.PredictResponse, error)
	PredictCsab(ctx context.Context, request *dto.CsabPredictRequest) (*dto.PredictResponse, error)
}

type predictorService struct {
	josaa contract.CutoffRepository
	csab  contract.CutoffRepository
	cfg   config.PredictionConfig
	log   logger.ILogger
}

func NewPredictorService(josaa, csab contract.CutoffRepository, cfg config.PredictionConfig, log logger.ILogger) IPredictorService {
	return &predictorService{
		josaa: josaa,
		csab:  csab,
		cfg:   cfg,
		log:   log,
	}
}

// JosaaDataset is the versioned JoSAA table the predictor reads.
func JosaaDataset(cfg config.PredictionConfig, limit int) prediction.Dataset {
	return prediction.Dataset{
		Year:          cfg.JosaaYear,
		Round:         cfg.JosaaRound,
		Limit:         limit,
		ExcludeBranch: cfg.ExcludeFamily,
	}
}

// CsabDataset is the CSAB special-round table.
func CsabDataset(cfg config.PredictionConfig, limit int) prediction.Dataset {
	return prediction.Dataset{
		Year:              cfg.CsabYear,
		Round:             cfg.CsabRound,
		IgnoreExamType:    true,
		IgnorePreparatory: true,
		Limit:             limit,
		ExcludeBranch:     cfg.ExcludeFamily,
	}
}

func (s *predictorService) PredictJosaa(ctx context.Context, request *dto.JosaaPredictRequest) (*dto.PredictResponse, error) {
	rank, err := prediction.ParseRank(string(request.Rank))
	if err != nil {
		return nil, err
	}
	category, err := parseCategory(request.Category)
	if err != nil {
		return nil, err
	}
	gender, err := parseGender(request.Gender)
	if err != nil {
		return nil, err
	}
	state, err := parseState(request.State)
	if err != nil {
		return nil, err
	}
	quota := request.Quota
	if quota == "" {
		quota = prediction.QuotaAllIndia
	}

	req := prediction.Request{
		Rank:        rank,
		ExamType:    query.ExamType(request.ExamType),
		Category:    category,
		Quota:       quota,
		Gender:      gender,
		Preparatory: request.Preparatory,
		State:       state,
	}
	return s.run(ctx, s.josaa, req, JosaaDataset(s.cfg, s.cfg.Limit))
}

func (s *predictorService) PredictCsab(ctx context.Context, request *dto.CsabPredictRequest) (*dto.PredictResponse, error) {
	rank, err := prediction.ParseRank(string(request.Rank))
	if err != nil {
		return nil, err
	}
	category, err := parseCategory(request.Category)
	if err != nil {
		return nil, err
	}
	gender, err := parseGender(request.Gender)
	if err != nil {
		return nil, err
	}
	state, err := parseState(request.State)
	if err != nil {
		return nil, err
	}

	req := prediction.Request{
		Rank:     rank,
		Category: category,
		Quota:    request.Quota,
		Gender:   gender,
		State:    state,
	}
	return s.run(ctx, s.csab, req, CsabDataset(s.cfg, s.cfg.Limit))
}

func (s *predictorService) run(ctx context.Context, repo contract.CutoffRepository, req prediction.Request, ds prediction.Dataset) (*dto.PredictResponse, error) {
	if (req.Quota == prediction.QuotaHomeState || req.Quota == prediction.QuotaOtherState) &&
		req.ExamType != query.ExamJEEAdvanced && req.State == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "state is required for home-state and other-state quotas")
	}

	spec, err := prediction.BuildQuery(req, ds)
	if err != nil {
		return nil, err
	}

	records, err := repo.FindCutoffs(ctx, spec)
	if err != nil {
		s.log.Error("predictor", "cutoff query failed", map[string]interface{}{
			"error":     err.Error(),
			"year":      ds.Year,
			"round":     ds.Round,
			"category":  string(req.Category),
			"exam_type": string(req.ExamType),
		})
		return nil, fmt.Errorf("cutoff query: %w", err)
	}

	res := &dto.PredictResponse{
		Year:    ds.Year,
		Round:   ds.Round,
		Count:   len(records),
		Results: records,
	}
	if len(records) == 0 {
		res.Results = []prediction.Record{}
		res.Message = constant.TextsFor(content.DefaultLanguage).NoCollegesFound
		s.warnIfRoundMissing(ctx, repo, ds)
	}
	return res, nil
}

// warnIfRoundMissing flags an empty result caused by a year/round that was
// never imported rather than by the candidate's rank.
func (s *predictorService) warnIfRoundMissing(ctx context.Context, repo contract.CutoffRepository, ds prediction.Dataset) {
	n, err := repo.Count(ctx,
		specification.Filter("year", ds.Year),
		specification.Filter("round_no", ds.Round),
	)
	if err != nil || n > 0 {
		return
	}
	s.log.Warn("predictor", "no cutoff rows loaded for configured round", map[string]interface{}{
		"year":  ds.Year,
		"round": ds.Round,
	})
}

// parseCategory accepts a canonical seat type or any synonym the chat
// extractor understands.
func parseCategory(raw string) (query.Category, error) {
	if c := query.Category(strings.TrimSpace(raw)); c.IsValid() {
		return c, nil
	}
	if c, ok := query.NormalizeCategory(strings.ToLower(raw)); ok {
		return c, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown category %q", raw))
}

// parseState accepts a canonical state name in any case, or a state or city
// synonym the chat extractor understands. Empty means no state given.
func parseState(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, st := range query.States() {
		if strings.EqualFold(st, raw) {
			return st, nil
		}
	}
	if st, ok := query.NormalizeState(strings.ToLower(raw)); ok {
		return st, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown state %q", raw))
}

func parseGender(raw string) (string, error) {
	switch strings.TrimSpace(raw) {
	case "", prediction.GenderNeutral:
		return prediction.GenderNeutral, nil
	case prediction.GenderFemale:
		return prediction.GenderFemale, nil
	default:
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown gender %q", raw))
	}
}
