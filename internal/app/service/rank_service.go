package service

import (
	"context"
	"net/http"

	"oj_client/internal/api"
	"oj_client/internal/domain/model"
)

const defaultRankRule = "acm"

type RankService struct {
	dispatcher Dispatcher
}

func NewRankService(d Dispatcher) *RankService {
	return &RankService{dispatcher: d}
}

// GetUserRank pages through the global ranking; rule defaults to "acm".
func (s *RankService) GetUserRank(ctx context.Context, offset, limit int, rule string) (*api.Response, error) {
	if rule == "" {
		rule = defaultRankRule
	}
	return s.dispatcher.Do(ctx, http.MethodGet, "user_rank", &api.Options{
		Params: api.Params{"offset": offset, "limit": limit, "rule": rule},
	})
}

func (s *RankService) GetContestRank(ctx context.Context, params api.Params) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest_rank", &api.Options{Params: params})
}

// AdminService wraps the few admin endpoints the contest pages use.
type AdminService struct {
	dispatcher Dispatcher
}

func NewAdminService(d Dispatcher) *AdminService {
	return &AdminService{dispatcher: d}
}

func (s *AdminService) SubmissionRejudge(ctx context.Context, id string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "admin/submission/rejudge", &api.Options{
		Params: api.Params{"id": id},
	})
}

func (s *AdminService) GetACMACInfo(ctx context.Context, params api.Params) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "admin/contest/acm_helper", &api.Options{Params: params})
}

func (s *AdminService) UpdateACInfoCheckedStatus(ctx context.Context, req model.ACInfoCheckRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPut, "admin/contest/acm_helper", &api.Options{Body: req})
}
