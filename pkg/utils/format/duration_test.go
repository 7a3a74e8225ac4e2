package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	require.Equal(t, 0, ParseISODuration(""))
	require.Equal(t, 0, ParseISODuration("P0D"))
	require.Equal(t, 33, ParseISODuration("PT33S"))
	require.Equal(t, 150, ParseISODuration("PT2M30S"))
	require.Equal(t, 3600, ParseISODuration("PT1H"))
	require.Equal(t, 3723, ParseISODuration("PT1H2M3S"))
	require.Equal(t, 600, ParseISODuration("PT10M"))
	require.Equal(t, 0, ParseISODuration("not-a-duration"))
}

func TestDuration_Display(t *testing.T) {
	require.Equal(t, "0:00", Duration(0))
	require.Equal(t, "0:00", Duration(-5))
	require.Equal(t, "2:30", Duration(150))
	require.Equal(t, "1:02:03", Duration(3723))
	require.Equal(t, "10:00", Duration(600))
}

func TestISODuration_Display(t *testing.T) {
	require.Equal(t, "1:02:03", ISODuration("PT1H2M3S"))
	require.Equal(t, "0:33", ISODuration("PT33S"))
	require.Equal(t, "0:00", ISODuration(""))
}
