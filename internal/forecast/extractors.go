package forecast

import (
	"regexp"
	"strconv"
	"strings"

	"marinecast/internal/models"
)

// Field extraction runs as an ordered sequence of independent extractors over
// one period's text. An extractor that fails to match contributes a null
// field; it never aborts the others.

var (
	// Longer compass points first so the alternation matches "NNE" before "N".
	windRe = regexp.MustCompile(`(?i)\b(NNE|ENE|ESE|SSE|SSW|WSW|WNW|NNW|NE|SE|SW|NW|N|E|S|W|VARIABLE)\s+winds?\s+(?:(\d+)\s+to\s+(\d+)|to\s+(\d+)|(\d+))\s*(?:kt|knots)\b`)
	gustRe  = regexp.MustCompile(`(?i)\bgusts?\s+(?:up\s+)?to\s+(\d+)\s*(?:kt|knots)\b`)
	trendRe = regexp.MustCompile(`(?i)\b(becoming|increasing to|decreasing to|easing to|rising to)\s+([^.]*)`)
	waveRe  = regexp.MustCompile(`(?i)\b(?:combined seas|waves|seas)\s+(?:around\s+)?(?:(\d+)\s+to\s+(\d+)|(\d+))\s*(?:ft|feet)\b(\s+or\s+less)?`)

	spaceRe      = regexp.MustCompile(`\s+`)
	waveDetailRe = regexp.MustCompile(`(?i)\b(wave detail|combined seas)\b[^.]*`)
)

func extractWind(text string) *models.WindData {
	match := windRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	wind := &models.WindData{
		Direction: strings.ToUpper(match[1]),
		RawText:   strings.TrimSpace(match[0]),
	}

	switch {
	case match[2] != "": // low to high
		low, _ := strconv.ParseFloat(match[2], 64)
		high, _ := strconv.ParseFloat(match[3], 64)
		wind.Speed = &models.Range{Low: low, High: high, Unit: "kt"}
	case match[4] != "": // "wind to N kt", bounded above only
		high, _ := strconv.ParseFloat(match[4], 64)
		wind.Speed = &models.Range{Low: 0, High: high, Unit: "kt"}
	case match[5] != "":
		val, _ := strconv.ParseFloat(match[5], 64)
		wind.Speed = &models.Range{Low: val, High: val, Unit: "kt"}
	}

	if gust := gustRe.FindStringSubmatch(text); gust != nil {
		val, _ := strconv.ParseFloat(gust[1], 64)
		wind.Gust = &val
	}

	if trend := trendRe.FindStringSubmatch(text); trend != nil {
		wind.Trend = spaceRe.ReplaceAllString(
			strings.TrimSpace(strings.ToLower(trend[1])+" "+strings.TrimSpace(trend[2])), " ")
	}

	return wind
}

func extractWaves(text string) *models.Range {
	match := waveRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	if match[1] != "" {
		low, _ := strconv.ParseFloat(match[1], 64)
		high, _ := strconv.ParseFloat(match[2], 64)
		return &models.Range{Low: low, High: high, Unit: "ft"}
	}

	val, _ := strconv.ParseFloat(match[3], 64)
	if match[4] != "" { // "around N ft or less" caps the span at N
		return &models.Range{Low: 0, High: val, Unit: "ft"}
	}
	return &models.Range{Low: val, High: val, Unit: "ft"}
}

// extractNotes returns the free-text weather remainder once the matched wind
// and wave fragments are removed.
func extractNotes(text string) string {
	cleaned := windRe.ReplaceAllString(text, "")
	cleaned = gustRe.ReplaceAllString(cleaned, "")
	cleaned = waveRe.ReplaceAllString(cleaned, "")
	cleaned = waveDetailRe.ReplaceAllString(cleaned, "")

	cleaned = spaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(cleaned, " .,")
	if len(cleaned) < 4 {
		return ""
	}
	return cleaned
}

// extractPeriodFields applies every extractor to one period segment.
func extractPeriodFields(name, text string) models.ForecastPeriod {
	wind := extractWind(text)
	return models.ForecastPeriod{
		Name:    name,
		Wind:    wind,
		Waves:   extractWaves(text),
		Notes:   extractNotes(text),
		Partial: wind == nil,
		RawText: text,
	}
}
