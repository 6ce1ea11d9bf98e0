package model

import (
	"time"
)

const (
	DifficultyLow  = "Low"
	DifficultyMid  = "Mid"
	DifficultyHigh = "High"
)

type Problem struct {
	ID                int64     `json:"id"`
	DisplayID         string    `json:"_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	InputDescription  string    `json:"input_description"`
	OutputDescription string    `json:"output_description"`
	Samples           []Sample  `json:"samples"`
	Hint              string    `json:"hint"`
	Languages         []string  `json:"languages"`
	TimeLimit         int       `json:"time_limit"`   // ms
	MemoryLimit       int       `json:"memory_limit"` // MB
	Difficulty        string    `json:"difficulty"`
	Tags              []string  `json:"tags"`
	Source            string    `json:"source"`
	RuleType          string    `json:"rule_type"`
	SubmissionNumber  int       `json:"submission_number"`
	AcceptedNumber    int       `json:"accepted_number"`
	MyStatus          *int      `json:"my_status,omitempty"`
	CreateTime        time.Time `json:"create_time"`
}

type Sample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Page is the backend's paginated list shape.
type Page[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
}
