package model

import "time"

const (
	ContestNotStarted = "1"
	ContestUnderway   = "0"
	ContestEnded      = "-1"

	ContestTypePublic   = "Public"
	ContestTypePassword = "Password Protected"

	RuleACM = "ACM"
	RuleOI  = "OI"
)

type Contest struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	RealTimeRank bool      `json:"real_time_rank"`
	RuleType     string    `json:"rule_type"`
	ContestType  string    `json:"contest_type"`
	Status       string    `json:"status"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CreateTime   time.Time `json:"create_time"`
	CreatedBy    User      `json:"created_by"`
}

type ContestAnnouncement struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreateTime time.Time `json:"create_time"`
}

type ContestAccess struct {
	Access bool `json:"access"`
}

type ContestPasswordRequest struct {
	ContestID int64  `json:"contest_id"`
	Password  string `json:"password"`
}

// ContestOverview is what a contest page needs on first load.
type ContestOverview struct {
	Contest   Contest
	Problems  []Problem
	AntiCheat ContestAntiCheatStatus
}
