package service

import (
	"context"
	"net/http"

	"oj_client/internal/api"
)

type SiteService struct {
	dispatcher Dispatcher
}

func NewSiteService(d Dispatcher) *SiteService {
	return &SiteService{dispatcher: d}
}

func (s *SiteService) GetWebsiteConf(ctx context.Context, params api.Params) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "website", &api.Options{Params: params})
}

func (s *SiteService) GetAnnouncementList(ctx context.Context, offset, limit int) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "announcement", &api.Options{
		Params: api.Params{"offset": offset, "limit": limit},
	})
}

func (s *SiteService) GetLanguages(ctx context.Context) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "languages", nil)
}
