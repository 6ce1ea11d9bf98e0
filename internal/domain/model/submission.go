package model

import "time"

type JudgeStatus int

const (
	StatusCompileError      JudgeStatus = -2
	StatusWrongAnswer       JudgeStatus = -1
	StatusAccepted          JudgeStatus = 0
	StatusCPUTimeLimit      JudgeStatus = 1
	StatusRealTimeLimit     JudgeStatus = 2
	StatusMemoryLimit       JudgeStatus = 3
	StatusRuntimeError      JudgeStatus = 4
	StatusSystemError       JudgeStatus = 5
	StatusPending           JudgeStatus = 6
	StatusJudging           JudgeStatus = 7
	StatusPartiallyAccepted JudgeStatus = 8
)

func (s JudgeStatus) String() string {
	switch s {
	case StatusCompileError:
		return "Compile Error"
	case StatusWrongAnswer:
		return "Wrong Answer"
	case StatusAccepted:
		return "Accepted"
	case StatusCPUTimeLimit, StatusRealTimeLimit:
		return "Time Limit Exceeded"
	case StatusMemoryLimit:
		return "Memory Limit Exceeded"
	case StatusRuntimeError:
		return "Runtime Error"
	case StatusSystemError:
		return "System Error"
	case StatusPending:
		return "Pending"
	case StatusJudging:
		return "Judging"
	case StatusPartiallyAccepted:
		return "Partially Accepted"
	}
	return "Unknown"
}

type Submission struct {
	ID         string              `json:"id"`
	Problem    string              `json:"problem"`
	Language   string              `json:"language"`
	Code       string              `json:"code,omitempty"`
	Result     JudgeStatus         `json:"result"`
	Statistic  SubmissionStatistic `json:"statistic_info"`
	Username   string              `json:"username"`
	Shared     bool                `json:"shared"`
	CreateTime time.Time           `json:"create_time"`
}

type SubmissionStatistic struct {
	TimeCost   int    `json:"time_cost"`   // ms
	MemoryCost int    `json:"memory_cost"` // bytes
	ErrInfo    string `json:"err_info,omitempty"`
	Score      int    `json:"score,omitempty"`
}

type SubmitCodeRequest struct {
	ProblemID int64  `json:"problem_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
	ContestID int64  `json:"contest_id,omitempty"`
	Captcha   string `json:"captcha,omitempty"`
}

type SubmitCodeResponse struct {
	SubmissionID string `json:"submission_id"`
}

type UpdateSubmissionRequest struct {
	ID     string `json:"id"`
	Shared bool   `json:"shared"`
}
