package forecast

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"marinecast/internal/models"
)

// Parse turns one raw coastal waters bulletin into a ForecastRecord. It is a
// pure function: no I/O, no clock, same input always yields the same record.
// Only a missing issuance timestamp (or empty input) fails the whole record;
// everything else degrades to per-period or per-field nulls.
func Parse(rawText string, zone models.ZoneCode) (*models.ForecastRecord, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &ParseError{Zone: zone, Reason: EmptyInput}
	}

	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")

	header := parseHeader(lines, zone)
	if !header.found {
		return nil, &ParseError{Zone: zone, Reason: HeaderMissing, Detail: "issuance timestamp not found"}
	}

	name := header.name
	if name == "" {
		name = "Zone " + strings.ToUpper(zone.String())
	}

	record := &models.ForecastRecord{
		Zone:    zone,
		Name:    name,
		Issued:  header.issued,
		Expires: resolveExpires(header.expiresCode, header.issued),
		Periods: parsePeriods(lines[header.lastLine+1:]),
		RawText: rawText,
	}

	return record, nil
}

type headerInfo struct {
	found       bool
	name        string
	issued      time.Time
	expiresCode string
	lastLine    int
}

var issuedRe = regexp.MustCompile(`\b(\d{3,4})\s+(AM|PM)\s+([A-Z]{3,4})\b(?:\s+[A-Za-z]{3}\s+([A-Za-z]{3})\s+(\d{1,2})\s+(\d{4}))?`)

// Fixed offsets for the timezone abbreviations NOAA products actually use.
var tzOffsets = map[string]int{
	"PST": -8, "PDT": -7,
	"MST": -7, "MDT": -6,
	"CST": -6, "CDT": -5,
	"EST": -5, "EDT": -4,
	"AKST": -9, "AKDT": -8,
	"HST": -10,
	"UTC": 0, "GMT": 0,
}

var monthsByAbbr = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseHeader locates the zone line (ZONE-DDHHMM-), an optional display-name
// line, and the issuance timestamp. The zone and name lines are optional; the
// timestamp is not.
func parseHeader(lines []string, zone models.ZoneCode) headerInfo {
	zoneRe := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(zone.String()) + `-(\d{6})?`)

	info := headerInfo{}
	start := 0
	for i, line := range lines {
		if match := zoneRe.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			info.expiresCode = match[1]
			start = i + 1
			break
		}
	}

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if match := issuedRe.FindStringSubmatch(line); match != nil {
			info.found = true
			info.issued = buildIssued(match)
			info.lastLine = i
			return info
		}
		// A non-timestamp line ending with "-" between the zone line and
		// the timestamp is the zone display name.
		if info.name == "" && start > 0 && strings.HasSuffix(line, "-") {
			info.name = strings.TrimSpace(strings.TrimSuffix(line, "-"))
		}
	}
	return info
}

func buildIssued(match []string) time.Time {
	clock, _ := strconv.Atoi(match[1])
	hour := clock / 100
	minute := clock % 100
	if match[2] == "PM" && hour != 12 {
		hour += 12
	}
	if match[2] == "AM" && hour == 12 {
		hour = 0
	}

	loc := time.UTC
	if offset, ok := tzOffsets[match[3]]; ok {
		loc = time.FixedZone(match[3], offset*3600)
	}

	if match[4] == "" {
		// Date-less issuance line; keep the time-of-day only.
		return time.Date(0, time.January, 1, hour, minute, 0, 0, loc)
	}

	month, ok := monthsByAbbr[strings.ToLower(match[4])]
	if !ok {
		return time.Date(0, time.January, 1, hour, minute, 0, 0, loc)
	}
	day, _ := strconv.Atoi(match[5])
	year, _ := strconv.Atoi(match[6])
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// resolveExpires interprets the DDHHMM expiry code against the issuance time
// so parsing stays deterministic. A code naming a day already past rolls into
// the next month.
func resolveExpires(code string, issued time.Time) time.Time {
	if len(code) != 6 || issued.Year() == 0 {
		return time.Time{}
	}
	day, _ := strconv.Atoi(code[0:2])
	hour, _ := strconv.Atoi(code[2:4])
	minute, _ := strconv.Atoi(code[4:6])
	if day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}
	}

	expires := time.Date(issued.Year(), issued.Month(), day, hour, minute, 0, 0, issued.Location())
	if expires.Before(issued) {
		expires = expires.AddDate(0, 1, 0)
	}
	return expires
}

// A period opens with "NAME..." at the start of a line, leading dot optional.
// The name is upper-case words only, which keeps wrapped forecast text such
// as "WAVES 2 TO 3 FT..." from opening a bogus period.
var periodStartRe = regexp.MustCompile(`^\.?([A-Z][A-Z /]{1,28}?)\.\.\.(.*)$`)

// parsePeriods walks the body lines after the header. Recognized period
// segments become ordered ForecastPeriods; boundary-looking lines that fail
// classification (advisory headlines and the like) are retained as one
// unclassified trailing period with raw notes only.
func parsePeriods(lines []string) []models.ForecastPeriod {
	type segment struct {
		name string
		text []string
	}

	var segments []segment
	var current *segment
	var leftover []string

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "$$" {
			break
		}
		if line == "" {
			continue
		}

		if match := periodStartRe.FindStringSubmatch(line); match != nil {
			segments = append(segments, segment{
				name: strings.TrimSpace(match[1]),
				text: []string{strings.TrimSpace(match[2])},
			})
			current = &segments[len(segments)-1]
			continue
		}

		if current != nil {
			current.text = append(current.text, line)
			continue
		}
		leftover = append(leftover, line)
	}

	periods := make([]models.ForecastPeriod, 0, len(segments)+1)
	for _, seg := range segments {
		text := strings.TrimSpace(strings.Join(seg.text, " "))
		periods = append(periods, extractPeriodFields(seg.name, text))
	}

	if len(leftover) > 0 {
		notes := strings.TrimSpace(strings.Join(leftover, " "))
		periods = append(periods, models.ForecastPeriod{
			Notes:   notes,
			Partial: true,
			RawText: notes,
		})
	}

	return periods
}
