package models

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest = RegisterRequest

type GenerateReportRequest struct {
	UserID UserID `json:"userId"`
	BirthInput
}

type CheckoutRequest struct {
	ItemID string `json:"itemId"`
	UserID UserID `json:"userId"`
}

// OwnerRequest carries the caller's id for share / stop-sharing.
type OwnerRequest struct {
	UserID UserID `json:"userId"`
}

type EmailReportRequest struct {
	UserID         UserID `json:"userId"`
	RecipientEmail string `json:"recipientEmail"`
}

type GenerateReportResponse struct {
	ReportID         int64   `json:"reportId"`
	ReportTitle      string  `json:"reportTitle"`
	SunSign          string  `json:"sunSign"`
	Slides           []Slide `json:"slides"`
	CreditsRemaining int     `json:"creditsRemaining"`
}

type SharedReportResponse struct {
	ReportTitle string  `json:"reportTitle"`
	Slides      []Slide `json:"slides"`
}

type ReportResponse struct {
	ID         int64      `json:"id"`
	Title      string     `json:"reportTitle"`
	Input      BirthInput `json:"input"`
	SunSign    string     `json:"sunSign"`
	Slides     []Slide    `json:"slides"`
	IsShared   bool       `json:"isShared"`
	ShareToken string     `json:"shareToken,omitempty"`
	CreatedAt  string     `json:"createdAt"`
}
