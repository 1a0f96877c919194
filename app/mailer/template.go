package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"example/cosmic-api/app/models"
)

type slideView struct {
	Title string
	Lines []string
}

type reportView struct {
	Title   string
	Input   models.BirthInput
	SunSign string
	Slides  []slideView
}

var reportHTML = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; color: #1f1b2e; max-width: 640px; margin: 0 auto;">
  <h1 style="color: #4b2a7b;">{{.Title}}</h1>
  <p>
    <strong>Name:</strong> {{.Input.Name}}<br>
    <strong>Born:</strong> {{.Input.BirthDate}} at {{.Input.BirthTime}}<br>
    <strong>Place:</strong> {{.Input.BirthPlace}}{{if .SunSign}}<br>
    <strong>Sun sign:</strong> {{.SunSign}}{{end}}
  </p>
  {{range .Slides}}
  <h2 style="color: #4b2a7b;">{{.Title}}</h2>
  <p>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
  {{end}}
  <p style="font-size: 12px; color: #777;">Sent with love from Cosmic Lottery.</p>
</body>
</html>
`))

// RenderReport builds the subject, HTML body and plain-text body for a report.
func RenderReport(r models.Report) (Message, error) {
	view := reportView{Title: r.Title, Input: r.Input, SunSign: r.SunSign}
	for _, s := range r.Slides {
		view.Slides = append(view.Slides, slideView{Title: s.Title, Lines: strings.Split(s.Content, "\n")})
	}

	var buf bytes.Buffer
	if err := reportHTML.Execute(&buf, view); err != nil {
		return Message{}, fmt.Errorf("render report email: %w", err)
	}

	return Message{
		Subject: "Your Cosmic Report: " + r.Title,
		HTML:    buf.String(),
		Text:    renderText(r),
	}, nil
}

func renderText(r models.Report) string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Name: %s\nBorn: %s at %s\nPlace: %s\n", r.Input.Name, r.Input.BirthDate, r.Input.BirthTime, r.Input.BirthPlace)
	if r.SunSign != "" {
		fmt.Fprintf(&sb, "Sun sign: %s\n", r.SunSign)
	}
	for _, s := range r.Slides {
		sb.WriteString("\n")
		sb.WriteString(s.Title)
		sb.WriteString("\n")
		sb.WriteString(s.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
