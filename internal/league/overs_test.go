package league

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOvers(t *testing.T) {
	testCases := []struct {
		in   string
		want Overs
	}{
		{"133.1", Overs{Complete: 133, Balls: 1}},
		{"140", Overs{Complete: 140}},
		{"0.5", Overs{Balls: 5}},
		{" 20.0 ", Overs{Complete: 20}},
	}
	for _, tc := range testCases {
		got, err := ParseOvers(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseOversRejectsBadNotation(t *testing.T) {
	for _, in := range []string{"", "1.6", "-1", "-1.2", "a.1", "1.-1", "1.10", "1.", "1.2.3"} {
		_, err := ParseOvers(in)
		assert.ErrorIs(t, err, ErrBadOvers, "input %q", in)
	}
}

func TestOversFloat(t *testing.T) {
	for o := 0; o <= 50; o++ {
		for b := 0; b < BallsPerOver; b++ {
			got, err := OversToFloat(Overs{Complete: o, Balls: b}.String())
			require.NoError(t, err)
			assert.Equal(t, float64(o)+float64(b)/6, got)
		}
	}

	f, err := OversToFloat("133.1")
	require.NoError(t, err)
	assert.InDelta(t, 133.1667, f, 1e-4)
}

func TestOversFromBallsRoundTrip(t *testing.T) {
	for n := 0; n <= 300; n++ {
		o := OversFromBalls(n)
		assert.Equal(t, n, o.TotalBalls())

		parsed, err := ParseOvers(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
	assert.Equal(t, "17.4", OversFromBalls(106).String())
	assert.Equal(t, "20", OversFromBalls(120).String())
}

func TestOversText(t *testing.T) {
	var got struct {
		Overs Overs `json:"overs"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"overs":"138.5"}`), &got))
	assert.Equal(t, Overs{Complete: 138, Balls: 5}, got.Overs)

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"overs":"138.5"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"overs":"138.6"}`), &got))
}
