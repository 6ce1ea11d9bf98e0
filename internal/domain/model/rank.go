package model

type RankUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type UserRank struct {
	User             RankUser `json:"user"`
	AcceptedNumber   int      `json:"accepted_number"`
	SubmissionNumber int      `json:"submission_number"`
	TotalScore       int      `json:"total_score"`
	Mood             string   `json:"mood"`
}

type ACInfoCheckRequest struct {
	RankID    int64  `json:"rank_id"`
	ProblemID string `json:"problem_id"`
	Checked   bool   `json:"checked"`
}
