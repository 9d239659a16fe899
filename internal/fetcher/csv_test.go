package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	t.Parallel()

	t.Run("header keyed and order preserved", func(t *testing.T) {
		t.Parallel()
		in := "Team,Piece,Order\nTeam Urgency,Heatwaves,2\nSymptoms,Sea Level,1\n"
		recs, err := ParseRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Heatwaves", recs[0]["Piece"])
		assert.Equal(t, "Sea Level", recs[1]["Piece"])
	})

	t.Run("unknown columns carried through", func(t *testing.T) {
		t.Parallel()
		in := "Team,Piece,Mystery\nA,B,C\n"
		recs, err := ParseRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "C", recs[0]["Mystery"])
	})

	t.Run("short rows drop missing cells", func(t *testing.T) {
		t.Parallel()
		in := "Team,Piece,Order\nA,B\n"
		recs, err := ParseRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		_, ok := recs[0]["Order"]
		assert.False(t, ok)
	})

	t.Run("wide rows drop surplus cells", func(t *testing.T) {
		t.Parallel()
		in := "Team,Piece\nA,B,extra\n"
		recs, err := ParseRecords(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, RawRecord{"Team": "A", "Piece": "B"}, recs[0])
	})

	t.Run("empty stream is a parse error", func(t *testing.T) {
		t.Parallel()
		_, err := ParseRecords(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("header only yields no records", func(t *testing.T) {
		t.Parallel()
		recs, err := ParseRecords(strings.NewReader("Team,Piece\n"))
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}
