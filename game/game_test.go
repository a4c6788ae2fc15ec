package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/mxdubois/sportsball/pqueue"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	roster := strings.Join([]string{
		"Alice/5",
		"Bob/9",
		"GO!",
		"Carol/5",
		"GO!",
		"GO!",
		"GO!",
	}, "\n")
	var out strings.Builder
	summary, err := Play(zerolog.Nop(), strings.NewReader(roster), &out, pqueue.DefaultSettings())
	require.NoError(t, err)
	require.Equal(t, Summary{PlayersLeft: 0, Resizes: 0, Turns: 4}, summary)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, []string{
		"Bob enters the game.",
		"Alice enters the game.",
		"Carol enters the game.",
		"No one is ready!",
	}, lines[1:5])
}

func TestPlayBadPriority(t *testing.T) {
	for _, tc := range []struct {
		desc          string
		roster        string
		expectedError string
	}{
		{
			desc:          "non-integer priority",
			roster:        "Alice/5\nBob/banana",
			expectedError: "reading priority on line 2",
		},
		{
			desc:          "missing delimiter",
			roster:        "Zed",
			expectedError: "reading priority on line 1",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Play(
				zerolog.Nop(), strings.NewReader(tc.roster), io.Discard, pqueue.DefaultSettings(),
			)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestPlayBadSettings(t *testing.T) {
	_, err := Play(
		zerolog.Nop(),
		strings.NewReader(""),
		io.Discard,
		pqueue.Settings{InitialCapacity: 30},
	)
	require.Error(t, err)
}

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata/datadriven", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var sb strings.Builder
			switch d.Cmd {
			case "play":
				settings := pqueue.DefaultSettings()
				for _, arg := range d.CmdArgs {
					switch arg.Key {
					case "initial-capacity":
						v, err := strconv.Atoi(arg.Vals[0])
						require.NoError(t, err)
						settings.InitialCapacity = v
					case "step-size":
						v, err := strconv.Atoi(arg.Vals[0])
						require.NoError(t, err)
						settings.GrowthStep = v
					}
				}
				if _, err := Play(
					zerolog.Nop(), strings.NewReader(d.Input), &sb, settings,
				); err != nil {
					sb.WriteString(fmt.Sprintf("error: %s\n", err.Error()))
				}
			default:
				t.Fatalf("unknown command: %s", d.Cmd)
			}
			return sb.String()
		})
	})
}
