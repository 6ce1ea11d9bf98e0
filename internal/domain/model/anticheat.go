package model

import "time"

// Violation types the contest page reports. The backend accepts any string.
const (
	ViolationTabSwitch      = "tab_switch"
	ViolationWindowBlur     = "window_blur"
	ViolationCopyPaste      = "copy_paste"
	ViolationFullscreenExit = "fullscreen_exit"
	ViolationDevTools       = "devtools_open"
)

// ViolationReport is built fresh for each report and sent once.
// ContestID and ViolationType are required.
type ViolationReport struct {
	ContestID        string
	ProblemID        string
	ViolationType    string
	ViolationDetails string
	Timestamp        time.Time
}

type Violation struct {
	ID               int64     `json:"id"`
	User             RankUser  `json:"user"`
	ContestID        int64     `json:"contest"`
	ProblemID        *int64    `json:"problem,omitempty"`
	ViolationType    string    `json:"violation_type"`
	ViolationDetails string    `json:"violation_details"`
	Timestamp        time.Time `json:"timestamp"`
}

type ProblemAntiCheatStatus struct {
	ProblemViolationCount int  `json:"problem_violation_count"`
	ProblemPenaltyMinutes int  `json:"problem_penalty_minutes"`
	ProblemSolved         bool `json:"problem_solved"`
	AntiCheatEnabled      bool `json:"anti_cheat_enabled"`
}

type ContestAntiCheatStatus struct {
	ViolationCount   int  `json:"violation_count"`
	AntiCheatEnabled bool `json:"anti_cheat_enabled"`
}
