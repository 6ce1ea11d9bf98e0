package service

import (
	"context"
	"net/http"

	"oj_client/internal/api"
	"oj_client/internal/domain/model"
)

type SubmissionService struct {
	dispatcher Dispatcher
}

func NewSubmissionService(d Dispatcher) *SubmissionService {
	return &SubmissionService{dispatcher: d}
}

func (s *SubmissionService) SubmitCode(ctx context.Context, req model.SubmitCodeRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "submission", &api.Options{Body: req})
}

// GetSubmissionList sends every caller param as-is plus offset and limit.
// The caller's map is left untouched.
func (s *SubmissionService) GetSubmissionList(ctx context.Context, offset, limit int, params api.Params) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "submissions", &api.Options{Params: pageParams(params, offset, limit)})
}

func (s *SubmissionService) GetContestSubmissionList(ctx context.Context, offset, limit int, params api.Params) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest_submissions", &api.Options{Params: pageParams(params, offset, limit)})
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "submission", &api.Options{
		Params: api.Params{"id": id},
	})
}

func (s *SubmissionService) SubmissionExists(ctx context.Context, problemID int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "submission_exists", &api.Options{
		Params: api.Params{"problem_id": problemID},
	})
}

func (s *SubmissionService) UpdateSubmission(ctx context.Context, req model.UpdateSubmissionRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPut, "submission", &api.Options{Body: req})
}

func pageParams(params api.Params, offset, limit int) api.Params {
	out := params.Clone()
	out["limit"] = limit
	out["offset"] = offset
	return out
}
