// Package report turns birth details into an LLM prompt and turns the
// completion text back into the five report slides.
package report

import (
	"fmt"

	"example/cosmic-api/app/models"
)

// SectionTitles are the exact headers the prompt asks for, in order.
var SectionTitles = [models.SlideCount]string{
	"1. Psychological and Personality Profile",
	"2. Career and Vocational Strengths",
	"3. Relationship Style and Love Patterns",
	"4. Karmic Lessons and Past Life Indicators",
	"5. Current Major Transits (next 1–2 years)",
}

const SystemInstruction = "You are an expert astrologer writing empowering, reflective natal chart readings. " +
	"Always answer with exactly five sections, each starting on its own line with the section header exactly as given, " +
	"followed by one concise paragraph."

const promptTemplate = "Create a detailed, high-level natal chart analysis for %s, born on %s at %s in %s. " +
	"Organize the reading into five key areas: " +
	"%s: Core traits, motivations, self-expression (Sun, Moon, Ascendant, key aspects). " +
	"%s: Potential paths, talents, work style (Midheaven, 2nd, 6th, 10th houses, relevant rulers). " +
	"%s: Approach to partnership, needs, communication in love (Venus, Mars, 7th house, Descendant). " +
	"%s: Soul evolution themes, challenges for growth (Lunar Nodes, Saturn, Pluto aspects). " +
	"%s: Significant outer planet transits (Jupiter, Saturn, Uranus, Neptune, Pluto) to natal planets and angles, and their likely impact. " +
	"Provide a concise, insightful paragraph for each of these five sections. " +
	"The tone should be empowering and reflective."

// BuildPrompt embeds the four birth fields into the fixed reading prompt.
func BuildPrompt(in models.BirthInput) string {
	return fmt.Sprintf(promptTemplate,
		in.Name, in.BirthDate, in.BirthTime, in.BirthPlace,
		SectionTitles[0], SectionTitles[1], SectionTitles[2], SectionTitles[3], SectionTitles[4],
	)
}

// Title is the report title shown in listings and emails.
func Title(name string) string {
	return "Natal Chart Analysis for " + name
}
