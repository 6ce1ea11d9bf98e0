package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"oj_client/internal/api"
	"oj_client/internal/common"
	"oj_client/internal/domain/model"
)

const (
	antiCheatViolationPath     = "contest/anti_cheat_violation/"
	antiCheatViolationListPath = "contest/anti_cheat_violations"
	problemAntiCheatStatusPath = "contest/problem_anti_cheat_status"
	contestAntiCheatStatusPath = "contest/anti_cheat_status"

	// ISO-8601 in UTC with milliseconds, as browsers print it.
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

// AntiCheatService reports contest violations and reads anti-cheat status.
// Status reads degrade to a disabled default on transport failures so the
// contest page keeps working.
type AntiCheatService struct {
	dispatcher Dispatcher
	now        func() time.Time
}

func NewAntiCheatService(d Dispatcher) *AntiCheatService {
	return &AntiCheatService{dispatcher: d, now: time.Now}
}

// ReportViolation sends one report. Failures are returned to the caller
// unchanged; nothing is retried.
func (s *AntiCheatService) ReportViolation(ctx context.Context, report model.ViolationReport) (*api.Response, error) {
	if report.ContestID == "" {
		log.Println("ERROR: anti-cheat report missing contest_id")
		return nil, common.NewValidationError("Contest ID is required")
	}
	if report.ViolationType == "" {
		log.Println("ERROR: anti-cheat report missing violation_type")
		return nil, common.NewValidationError("Violation type is required")
	}

	timestamp := report.Timestamp
	if timestamp.IsZero() {
		timestamp = s.now()
	}
	payload := map[string]string{
		"contest_id":        report.ContestID,
		"violation_type":    report.ViolationType,
		"violation_details": report.ViolationDetails,
		"timestamp":         timestamp.UTC().Format(timestampLayout),
	}
	if report.ProblemID != "" {
		payload["problem_id"] = report.ProblemID
	}

	resp, err := s.dispatcher.Do(ctx, http.MethodPost, antiCheatViolationPath, &api.Options{Body: payload})
	if err != nil {
		log.Printf("ERROR: anti-cheat report for contest %s failed: %v", report.ContestID, err)
		return nil, err
	}
	log.Printf("INFO: anti-cheat violation %q reported for contest %s", report.ViolationType, report.ContestID)
	return resp, nil
}

// GetViolations lists violations in a contest, optionally for one user.
func (s *AntiCheatService) GetViolations(ctx context.Context, contestID, userID string) (*api.Response, error) {
	if contestID == "" {
		return nil, common.NewValidationError("Contest ID is required")
	}
	params := api.Params{"contest_id": contestID}
	if userID != "" {
		params["user_id"] = userID
	}
	return s.dispatcher.Do(ctx, http.MethodGet, antiCheatViolationListPath, &api.Options{Params: params})
}

// CheckProblemStatus reads the per-problem status. Backend-flagged lookup
// failures are returned with a clearer message; transport failures resolve
// to the disabled default.
func (s *AntiCheatService) CheckProblemStatus(ctx context.Context, contestID, problemID string) (*api.Response, error) {
	if contestID == "" || problemID == "" {
		log.Println("WARN: missing contest or problem id for anti-cheat status check")
		return nil, common.NewValidationError("Contest ID and Problem ID are required")
	}

	resp, err := s.dispatcher.Do(ctx, http.MethodGet, problemAntiCheatStatusPath, &api.Options{
		Params: api.Params{"contest_id": contestID, "problem_id": problemID},
	})
	if err == nil {
		return resp, nil
	}
	log.Printf("WARN: anti-cheat status check failed for contest %s, problem %s: %v", contestID, problemID, err)

	var apiErr *common.Error
	if errors.As(err, &apiErr) && apiErr.Kind == common.KindAPI {
		message := apiErr.Message
		switch {
		case strings.Contains(message, "Problem not found in this contest"):
			return nil, clarify(apiErr, fmt.Sprintf("Problem not found in contest. Please check if problem %s belongs to contest %s.", problemID, contestID))
		case strings.Contains(message, "Contest not found"):
			return nil, clarify(apiErr, "Contest not found. Please check if the contest exists.")
		case strings.Contains(message, "Problem not found"):
			return nil, clarify(apiErr, "Problem not found. Please check if the problem exists.")
		}
		return nil, err
	}

	log.Printf("WARN: returning default anti-cheat status for contest %s, problem %s", contestID, problemID)
	return api.NewLocalResponse(model.ProblemAntiCheatStatus{})
}

// CheckContestStatus reads the contest-wide status. Every dispatcher
// failure resolves to the disabled default.
func (s *AntiCheatService) CheckContestStatus(ctx context.Context, contestID string) (*api.Response, error) {
	if contestID == "" {
		log.Println("WARN: missing contest id for anti-cheat status check")
		return nil, common.NewValidationError("Contest ID is required")
	}

	resp, err := s.dispatcher.Do(ctx, http.MethodGet, contestAntiCheatStatusPath, &api.Options{
		Params: api.Params{"contest_id": contestID},
	})
	if err != nil {
		log.Printf("WARN: contest anti-cheat status check failed for contest %s, using default: %v", contestID, err)
		return api.NewLocalResponse(model.ContestAntiCheatStatus{})
	}
	return resp, nil
}

func clarify(cause *common.Error, message string) *common.Error {
	return &common.Error{
		Kind:     common.KindAPI,
		Message:  message,
		Response: cause.Response,
		Err:      cause,
	}
}
