package report

import "strings"

// Sign is the public catalogue entry for one zodiac sign.
type Sign struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Symbol          string   `json:"symbol"`
	Element         string   `json:"element"`
	RulingPlanet    string   `json:"ruling_planet"`
	Dates           string   `json:"dates"`
	Traits          []string `json:"traits"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Compatibility   []string `json:"compatibility"`
	Description     string   `json:"description"`
	CareerStrengths []string `json:"career_strengths"`
	LoveTraits      string   `json:"love_traits"`
}

// Signs lists the twelve signs from Aries to Pisces.
var Signs = []Sign{
	{
		ID:              "aries",
		Name:            "Aries",
		Symbol:          "♈",
		Element:         "Fire",
		RulingPlanet:    "Mars",
		Dates:           "March 21 - April 19",
		Traits:          []string{"Ambitious", "Independent", "Impatient"},
		Strengths:       []string{"Courageous", "Determined", "Confident", "Enthusiastic"},
		Weaknesses:      []string{"Impatient", "Moody", "Short-tempered", "Impulsive"},
		Compatibility:   []string{"Leo", "Sagittarius", "Gemini", "Aquarius"},
		Description:     "Aries is the first sign of the zodiac, and those born under this sign are bold and ambitious. They are eager to be the leader of the pack, first in line to get things going. Quick to anger but also to forgive, Aries is known for having a hot temper.",
		CareerStrengths: []string{"Leadership", "Entrepreneurship", "Sports", "Military"},
		LoveTraits:      "In relationships, Aries is passionate and direct. They value honesty and authenticity from their partners.",
	},
	{
		ID:              "taurus",
		Name:            "Taurus",
		Symbol:          "♉",
		Element:         "Earth",
		RulingPlanet:    "Venus",
		Dates:           "April 20 - May 20",
		Traits:          []string{"Reliable", "Patient", "Practical"},
		Strengths:       []string{"Reliable", "Patient", "Practical", "Devoted"},
		Weaknesses:      []string{"Stubborn", "Possessive", "Uncompromising"},
		Compatibility:   []string{"Virgo", "Capricorn", "Cancer", "Pisces"},
		Description:     "Taurus is an earth sign represented by the bull. Those born under this sign enjoy relaxing in serene, bucolic environments, surrounded by soft sounds, soothing aromas, and succulent flavors. They are known for their practicality, reliability, and affinity for luxury.",
		CareerStrengths: []string{"Finance", "Art", "Real Estate", "Agriculture"},
		LoveTraits:      "In relationships, Taurus is loyal and stable. They value security and can be quite romantic and sensual.",
	},
	{
		ID:              "gemini",
		Name:            "Gemini",
		Symbol:          "♊",
		Element:         "Air",
		RulingPlanet:    "Mercury",
		Dates:           "May 21 - June 20",
		Traits:          []string{"Curious", "Adaptable", "Communicative"},
		Strengths:       []string{"Gentle", "Affectionate", "Curious", "Adaptable"},
		Weaknesses:      []string{"Nervous", "Inconsistent", "Indecisive"},
		Compatibility:   []string{"Libra", "Aquarius", "Aries", "Leo"},
		Description:     "Gemini is represented by the twins, a symbol of duality. Those born under this sign are versatile, expressive, and quick-witted. They are intellectually inclined, constantly on the move, and very sociable.",
		CareerStrengths: []string{"Communication", "Writing", "Media", "Sales"},
		LoveTraits:      "In relationships, Gemini is engaging and communicative. They value intellectual connection and can be playfully flirtatious.",
	},
	{
		ID:              "cancer",
		Name:            "Cancer",
		Symbol:          "♋",
		Element:         "Water",
		RulingPlanet:    "Moon",
		Dates:           "June 21 - July 22",
		Traits:          []string{"Emotional", "Protective", "Intuitive"},
		Strengths:       []string{"Tenacious", "Highly Imaginative", "Loyal", "Emotional"},
		Weaknesses:      []string{"Moody", "Pessimistic", "Suspicious", "Manipulative"},
		Compatibility:   []string{"Scorpio", "Pisces", "Taurus", "Virgo"},
		Description:     "Cancer is a water sign represented by the crab. Those born under this sign are known for their emotional depth, nurturing nature, and attachment to home and family. They are highly intuitive and can be quite tenacious when protecting loved ones.",
		CareerStrengths: []string{"Nursing", "Teaching", "Culinary Arts", "Social Work"},
		LoveTraits:      "In relationships, Cancer is nurturing and protective. They value emotional security and deep connection.",
	},
	{
		ID:              "leo",
		Name:            "Leo",
		Symbol:          "♌",
		Element:         "Fire",
		RulingPlanet:    "Sun",
		Dates:           "July 23 - August 22",
		Traits:          []string{"Creative", "Passionate", "Generous"},
		Strengths:       []string{"Creative", "Passionate", "Generous", "Warm-hearted"},
		Weaknesses:      []string{"Arrogant", "Stubborn", "Self-centered"},
		Compatibility:   []string{"Aries", "Sagittarius", "Gemini", "Libra"},
		Description:     "Leo is a fire sign represented by the lion. Those born under this sign are natural leaders, dramatic, creative, and confident. They love being in the spotlight and celebrating life. They are generous, loyal, and extremely prideful.",
		CareerStrengths: []string{"Entertainment", "Management", "Politics", "Design"},
		LoveTraits:      "In relationships, Leo is passionate and loyal. They value admiration and can be quite romantic and dramatic in expressing love.",
	},
	{
		ID:              "virgo",
		Name:            "Virgo",
		Symbol:          "♍",
		Element:         "Earth",
		RulingPlanet:    "Mercury",
		Dates:           "August 23 - September 22",
		Traits:          []string{"Analytical", "Practical", "Diligent"},
		Strengths:       []string{"Loyal", "Analytical", "Kind", "Hardworking"},
		Weaknesses:      []string{"Overly Critical", "Perfectionist", "Shy"},
		Compatibility:   []string{"Taurus", "Capricorn", "Cancer", "Scorpio"},
		Description:     "Virgo is an earth sign represented by the goddess of wheat and agriculture. Those born under this sign are methodical, analytical, and practical. They have an eye for detail and are service-oriented, always ready to help others improve.",
		CareerStrengths: []string{"Healthcare", "Research", "Analysis", "Editing"},
		LoveTraits:      "In relationships, Virgo is attentive and supportive. They value honesty and can be quite devoted to helping their partners grow.",
	},
	{
		ID:              "libra",
		Name:            "Libra",
		Symbol:          "♎",
		Element:         "Air",
		RulingPlanet:    "Venus",
		Dates:           "September 23 - October 22",
		Traits:          []string{"Diplomatic", "Fair-minded", "Social"},
		Strengths:       []string{"Cooperative", "Diplomatic", "Gracious", "Fair-minded"},
		Weaknesses:      []string{"Indecisive", "Avoids Confrontation", "Self-pitying"},
		Compatibility:   []string{"Gemini", "Aquarius", "Leo", "Sagittarius"},
		Description:     "Libra is an air sign represented by the scales, a symbol of balance and harmony. Those born under this sign are concerned with creating equilibrium in all aspects of life. They are diplomatic, relationship-oriented, and have a strong sense of justice.",
		CareerStrengths: []string{"Law", "Diplomacy", "Design", "Counseling"},
		LoveTraits:      "In relationships, Libra is harmonious and partnership-oriented. They value balance and can be quite charming and romantic.",
	},
	{
		ID:              "scorpio",
		Name:            "Scorpio",
		Symbol:          "♏",
		Element:         "Water",
		RulingPlanet:    "Pluto, Mars",
		Dates:           "October 23 - November 21",
		Traits:          []string{"Passionate", "Intense", "Mysterious"},
		Strengths:       []string{"Resourceful", "Brave", "Passionate", "Stubborn"},
		Weaknesses:      []string{"Distrusting", "Jealous", "Secretive", "Violent"},
		Compatibility:   []string{"Cancer", "Pisces", "Virgo", "Capricorn"},
		Description:     "Scorpio is a water sign represented by the scorpion. Those born under this sign are intense, passionate, and enigmatic. They have deep emotional reserves and are known for their powerful intuition and investigative nature.",
		CareerStrengths: []string{"Investigation", "Psychology", "Surgery", "Research"},
		LoveTraits:      "In relationships, Scorpio is passionate and loyal. They value trust and can be intensely devoted once they commit.",
	},
	{
		ID:              "sagittarius",
		Name:            "Sagittarius",
		Symbol:          "♐",
		Element:         "Fire",
		RulingPlanet:    "Jupiter",
		Dates:           "November 22 - December 21",
		Traits:          []string{"Optimistic", "Freedom-loving", "Philosophical"},
		Strengths:       []string{"Generous", "Idealistic", "Great Sense of Humor"},
		Weaknesses:      []string{"Promises More than Can Deliver", "Very Impatient", "Will Say Anything"},
		Compatibility:   []string{"Aries", "Leo", "Libra", "Aquarius"},
		Description:     "Sagittarius is a fire sign represented by the archer. Those born under this sign are optimistic, freedom-loving, and philosophical. They have a love for travel, learning, and exploring new ideas and cultures.",
		CareerStrengths: []string{"Academia", "Travel", "Philosophy", "Sports"},
		LoveTraits:      "In relationships, Sagittarius is adventurous and honest. They value freedom and can be quite enthusiastic and spontaneous.",
	},
	{
		ID:              "capricorn",
		Name:            "Capricorn",
		Symbol:          "♑",
		Element:         "Earth",
		RulingPlanet:    "Saturn",
		Dates:           "December 22 - January 19",
		Traits:          []string{"Responsible", "Disciplined", "Self-controlled"},
		Strengths:       []string{"Responsible", "Disciplined", "Self-control", "Good managers"},
		Weaknesses:      []string{"Know-it-all", "Unforgiving", "Condescending", "Expecting the worst"},
		Compatibility:   []string{"Taurus", "Virgo", "Scorpio", "Pisces"},
		Description:     "Capricorn is an earth sign represented by the sea goat. Those born under this sign are ambitious, practical, and disciplined. They are excellent at setting and achieving long-term goals and have a strong sense of responsibility.",
		CareerStrengths: []string{"Business", "Finance", "Architecture", "Engineering"},
		LoveTraits:      "In relationships, Capricorn is loyal and committed. They value stability and can be quite traditional in their approach to partnerships.",
	},
	{
		ID:              "aquarius",
		Name:            "Aquarius",
		Symbol:          "♒",
		Element:         "Air",
		RulingPlanet:    "Uranus, Saturn",
		Dates:           "January 20 - February 18",
		Traits:          []string{"Progressive", "Original", "Independent"},
		Strengths:       []string{"Progressive", "Original", "Independent", "Humanitarian"},
		Weaknesses:      []string{"Runs from Emotional Expression", "Temperamental", "Uncompromising"},
		Compatibility:   []string{"Gemini", "Libra", "Sagittarius", "Aries"},
		Description:     "Aquarius is an air sign represented by the water bearer. Those born under this sign are innovative, progressive, and humanitarian. They are visionaries who are deeply concerned with social causes and intellectual pursuits.",
		CareerStrengths: []string{"Science", "Technology", "Social Reform", "Invention"},
		LoveTraits:      "In relationships, Aquarius is independent and intellectually stimulating. They value friendship and can be quite unconventional in their approach to love.",
	},
	{
		ID:              "pisces",
		Name:            "Pisces",
		Symbol:          "♓",
		Element:         "Water",
		RulingPlanet:    "Neptune, Jupiter",
		Dates:           "February 19 - March 20",
		Traits:          []string{"Compassionate", "Artistic", "Intuitive"},
		Strengths:       []string{"Compassionate", "Artistic", "Intuitive", "Gentle"},
		Weaknesses:      []string{"Fearful", "Overly Trusting", "Desire to Escape Reality"},
		Compatibility:   []string{"Cancer", "Scorpio", "Taurus", "Capricorn"},
		Description:     "Pisces is a water sign represented by two fish swimming in opposite directions. Those born under this sign are empathetic, creative, and deeply intuitive. They have a strong connection to the spiritual realm and often possess artistic talents.",
		CareerStrengths: []string{"Arts", "Healing", "Music", "Spiritual Leadership"},
		LoveTraits:      "In relationships, Pisces is romantic and empathetic. They value emotional connection and can be quite selfless in their devotion.",
	},
}

// LookupSign finds a sign by id or name, case-insensitively.
func LookupSign(key string) (Sign, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range Signs {
		if s.ID == key {
			return s, true
		}
	}
	return Sign{}, false
}
