package forecast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marinecast/internal/models"
)

const pzz135Bulletin = `000
FZUS56 KSEW 052215
CWFSEW

Coastal Waters Forecast for Washington
National Weather Service Seattle Washington
305 PM PDT Tue Aug 5 2025

PZZ135-061115-
Puget Sound and Hood Canal-
305 PM PDT Tue Aug 5 2025

...SMALL CRAFT ADVISORY IN EFFECT THROUGH WEDNESDAY MORNING...

.TONIGHT...W wind 10 to 15 kt becoming 5 to 10 kt after midnight.
Waves 2 ft or less. A chance of showers.
.WED...NW wind to 10 kt. Waves 2 ft or less. Showers likely.
.WED NIGHT...SE wind 15 to 20 kt with gusts up to 30 kt. Waves 2 to
4 ft. Rain.
.THU...Light wind becoming N 5 to 10 kt in the afternoon. Waves
2 ft or less.

$$
`

func TestParse_FullBulletin(t *testing.T) {
	record, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)

	assert.Equal(t, models.ZoneCode("pzz135"), record.Zone)
	assert.Equal(t, "Puget Sound and Hood Canal", record.Name)

	pdt := time.FixedZone("PDT", -7*3600)
	assert.True(t, record.Issued.Equal(time.Date(2025, time.August, 5, 15, 5, 0, 0, pdt)))
	assert.True(t, record.Expires.Equal(time.Date(2025, time.August, 6, 11, 15, 0, 0, pdt)))

	// Four named periods plus the retained advisory headline.
	require.Len(t, record.Periods, 5)
	assert.Equal(t, "TONIGHT", record.Periods[0].Name)
	assert.Equal(t, "WED", record.Periods[1].Name)
	assert.Equal(t, "WED NIGHT", record.Periods[2].Name)
	assert.Equal(t, "THU", record.Periods[3].Name)
}

func TestParse_WindFields(t *testing.T) {
	record, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)

	tonight := record.Periods[0]
	require.NotNil(t, tonight.Wind)
	assert.Equal(t, "W", tonight.Wind.Direction)
	require.NotNil(t, tonight.Wind.Speed)
	assert.Equal(t, 10.0, tonight.Wind.Speed.Low)
	assert.Equal(t, 15.0, tonight.Wind.Speed.High)
	assert.Equal(t, "kt", tonight.Wind.Speed.Unit)
	assert.Contains(t, tonight.Wind.Trend, "becoming")
	assert.False(t, tonight.Partial)

	wed := record.Periods[1]
	require.NotNil(t, wed.Wind)
	assert.Equal(t, "NW", wed.Wind.Direction)
	require.NotNil(t, wed.Wind.Speed)
	assert.Equal(t, 0.0, wed.Wind.Speed.Low)
	assert.Equal(t, 10.0, wed.Wind.Speed.High)

	wedNight := record.Periods[2]
	require.NotNil(t, wedNight.Wind)
	assert.Equal(t, "SE", wedNight.Wind.Direction)
	require.NotNil(t, wedNight.Wind.Gust)
	assert.Equal(t, 30.0, *wedNight.Wind.Gust)
}

func TestParse_WaveFields(t *testing.T) {
	record, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)

	tonight := record.Periods[0]
	require.NotNil(t, tonight.Waves)
	assert.Equal(t, 0.0, tonight.Waves.Low)
	assert.Equal(t, 2.0, tonight.Waves.High)
	assert.Equal(t, "ft", tonight.Waves.Unit)

	// Wrapped "Waves 2 to\n4 ft" spans lines.
	wedNight := record.Periods[2]
	require.NotNil(t, wedNight.Waves)
	assert.Equal(t, 2.0, wedNight.Waves.Low)
	assert.Equal(t, 4.0, wedNight.Waves.High)
}

func TestParse_ToleratesUnparseableWind(t *testing.T) {
	record, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)

	// "Light wind becoming N 5 to 10 kt" has no direction-first wind phrase.
	thu := record.Periods[3]
	assert.Nil(t, thu.Wind)
	assert.True(t, thu.Partial)
	require.NotNil(t, thu.Waves)
	assert.Equal(t, 2.0, thu.Waves.High)
}

func TestParse_RetainsHeadlineAsUnclassifiedPeriod(t *testing.T) {
	record, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)

	trailing := record.Periods[len(record.Periods)-1]
	assert.Empty(t, trailing.Name)
	assert.True(t, trailing.Partial)
	assert.Contains(t, trailing.Notes, "SMALL CRAFT ADVISORY")
	assert.Nil(t, trailing.Wind)
}

func TestParse_CompactAllCapsBulletin(t *testing.T) {
	text := "PZZ135-...\n1200 AM PST...\nTONIGHT...W WIND 10 TO 15 KT...WAVES 2 TO 3 FT..."

	record, err := Parse(text, "pzz135")
	require.NoError(t, err)

	require.Len(t, record.Periods, 1)
	period := record.Periods[0]
	assert.Equal(t, "TONIGHT", period.Name)
	require.NotNil(t, period.Wind)
	assert.Equal(t, "W", period.Wind.Direction)
	require.NotNil(t, period.Wind.Speed)
	assert.Equal(t, 10.0, period.Wind.Speed.Low)
	assert.Equal(t, 15.0, period.Wind.Speed.High)
	require.NotNil(t, period.Waves)
	assert.Equal(t, 2.0, period.Waves.Low)
	assert.Equal(t, 3.0, period.Waves.High)
}

func TestParse_Deterministic(t *testing.T) {
	first, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)
	second, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n"} {
		_, err := Parse(text, "pzz135")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, EmptyInput, parseErr.Reason)
	}
}

func TestParse_HeaderMissing(t *testing.T) {
	text := "PZZ135-061115-\nPuget Sound and Hood Canal-\n.TONIGHT...W wind 10 kt.\n"

	_, err := Parse(text, "pzz135")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, HeaderMissing, parseErr.Reason)
}

func TestParse_MissingNameFallsBack(t *testing.T) {
	text := "PZZ134-\n200 PM PST Mon Jan 6 2025\n.TONIGHT...N wind 5 kt. Waves 1 ft.\n"

	record, err := Parse(text, "pzz134")
	require.NoError(t, err)
	assert.Equal(t, "Zone PZZ134", record.Name)
}

func TestParse_ExpiresRollsToNextMonth(t *testing.T) {
	text := "PZZ135-010600-\nPuget Sound and Hood Canal-\n900 AM PST Fri Jan 31 2025\n.TODAY...S wind 10 kt.\n"

	record, err := Parse(text, "pzz135")
	require.NoError(t, err)

	pst := time.FixedZone("PST", -8*3600)
	assert.True(t, record.Expires.Equal(time.Date(2025, time.February, 1, 6, 0, 0, 0, pst)))
}

func TestParse_RawTextPreserved(t *testing.T) {
	record, err := Parse(pzz135Bulletin, "pzz135")
	require.NoError(t, err)
	assert.Equal(t, pzz135Bulletin, record.RawText)
	assert.True(t, strings.Contains(record.Periods[0].RawText, "W wind 10 to 15 kt"))
}
