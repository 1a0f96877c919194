package models

import "time"

const SlideCount = 5

type Slide struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BirthInput is what the user types into the report form.
type BirthInput struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace"`
}

type Report struct {
	ID                    int64
	UserID                int64
	Title                 string
	Input                 BirthInput
	SunSign               string
	Slides                [SlideCount]Slide
	IsShared              bool
	ShareToken            string
	ShareTokenGeneratedAt *time.Time
	CreatedAt             time.Time
}

// ReportSummary is one row of the "my reports" listing.
type ReportSummary struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ReportTitle     string    `json:"report_title"`
	CreatedAt       time.Time `json:"created_at"`
	InputName       string    `json:"input_name"`
	InputBirthDate  string    `json:"input_birth_date"`
	InputBirthTime  string    `json:"input_birth_time"`
	InputBirthPlace string    `json:"input_birth_place"`
	IsShared        bool      `json:"is_shared"`
	ShareToken      *string   `json:"share_token"`
}
