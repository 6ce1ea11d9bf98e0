package service

import (
	"context"
	"net/http"
	"strconv"

	"oj_client/internal/api"
	"oj_client/internal/common"
	"oj_client/internal/domain/model"

	"golang.org/x/sync/errgroup"
)

type ContestService struct {
	dispatcher Dispatcher
	antiCheat  *AntiCheatService
}

func NewContestService(d Dispatcher, antiCheat *AntiCheatService) *ContestService {
	return &ContestService{dispatcher: d, antiCheat: antiCheat}
}

// GetContestList pages through contests. search may be nil; only truthy
// values are sent.
func (s *ContestService) GetContestList(ctx context.Context, offset, limit int, search map[string]interface{}) (*api.Response, error) {
	params := api.Params{
		"offset": offset,
		"limit":  limit,
	}.MergeTruthy(search)
	return s.dispatcher.Do(ctx, http.MethodGet, "contests", &api.Options{Params: params})
}

func (s *ContestService) GetContest(ctx context.Context, id int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest", &api.Options{
		Params: api.Params{"id": id},
	})
}

func (s *ContestService) GetContestAccess(ctx context.Context, contestID int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest/access", &api.Options{
		Params: api.Params{"contest_id": contestID},
	})
}

func (s *ContestService) CheckContestPassword(ctx context.Context, contestID int64, password string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "contest/password", &api.Options{
		Body: model.ContestPasswordRequest{ContestID: contestID, Password: password},
	})
}

func (s *ContestService) GetContestAnnouncementList(ctx context.Context, contestID int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest/announcement", &api.Options{
		Params: api.Params{"contest_id": contestID},
	})
}

func (s *ContestService) GetContestProblemList(ctx context.Context, contestID int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest/problem", &api.Options{
		Params: api.Params{"contest_id": contestID},
	})
}

func (s *ContestService) GetContestProblem(ctx context.Context, problemID string, contestID int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "contest/problem", &api.Options{
		Params: api.Params{"contest_id": contestID, "problem_id": problemID},
	})
}

// LoadOverview fetches the contest, its problems and the contest-wide
// anti-cheat status concurrently. The reads are independent: one failing
// does not cancel the others. The anti-cheat read never fails once the
// contest id is valid.
func (s *ContestService) LoadOverview(ctx context.Context, contestID int64) (*model.ContestOverview, error) {
	if contestID == 0 {
		return nil, common.NewValidationError("Contest ID is required")
	}
	var overview model.ContestOverview
	var g errgroup.Group

	g.Go(func() error {
		contest, err := Decode[model.Contest](s.GetContest(ctx, contestID))
		if err != nil {
			return err
		}
		overview.Contest = contest
		return nil
	})
	g.Go(func() error {
		problems, err := Decode[[]model.Problem](s.GetContestProblemList(ctx, contestID))
		if err != nil {
			return err
		}
		overview.Problems = problems
		return nil
	})
	if s.antiCheat != nil {
		g.Go(func() error {
			status, err := Decode[model.ContestAntiCheatStatus](s.antiCheat.CheckContestStatus(ctx, strconv.FormatInt(contestID, 10)))
			if err != nil {
				return err
			}
			overview.AntiCheat = status
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
