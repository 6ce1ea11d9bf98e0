package service

import (
	"context"
	"net/http"

	"oj_client/internal/api"
)

type ProblemService struct {
	dispatcher Dispatcher
}

func NewProblemService(d Dispatcher) *ProblemService {
	return &ProblemService{dispatcher: d}
}

func (s *ProblemService) GetProblemTagList(ctx context.Context) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "problem/tags", nil)
}

// GetProblemList pages through the public problem set. Only truthy search
// values (keyword, difficulty, tag, ...) are sent.
func (s *ProblemService) GetProblemList(ctx context.Context, offset, limit int, search map[string]interface{}) (*api.Response, error) {
	params := api.Params{
		"paging": true,
		"offset": offset,
		"limit":  limit,
	}.MergeTruthy(search)
	return s.dispatcher.Do(ctx, http.MethodGet, "problem", &api.Options{Params: params})
}

func (s *ProblemService) PickOne(ctx context.Context) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "pickone", nil)
}

// GetProblem fetches a problem by its display id.
func (s *ProblemService) GetProblem(ctx context.Context, problemID string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "problem", &api.Options{
		Params: api.Params{"problem_id": problemID},
	})
}
