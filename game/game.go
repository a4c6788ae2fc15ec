// Package game implements the sportsball turn-taking engine: a line-oriented
// harness that feeds a roster into a priority queue and substitutes the
// highest-priority player whenever the roster says GO!.
package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mxdubois/sportsball/pqueue"
	"github.com/rs/zerolog"
)

const (
	// SubPlayerToken substitutes the next player into the game when it
	// appears on a line of its own.
	SubPlayerToken = "GO!"

	inlineDelimiter = "/"
	title           = "SPORTSBALL!"
	lineWidth       = 80
)

// Summary reports the state of the bench once the roster runs out.
type Summary struct {
	// PlayersLeft is the number of players still waiting to enter.
	PlayersLeft int
	// Resizes is the number of times the queue's backing arrays resized.
	Resizes int
	// Turns is the number of GO! lines taken.
	Turns int
}

// Play reads a roster line-by-line from r and writes the play-by-play to w.
// A line equal to SubPlayerToken pops and announces the current top player;
// any other line has the form name/priority and queues that player. A
// malformed priority aborts the game with an error naming the line.
func Play(
	logger zerolog.Logger, r io.Reader, w io.Writer, settings pqueue.Settings,
) (Summary, error) {
	queue, err := pqueue.New[string](settings)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintln(w, banner())

	var summary Summary
	resizesSeen := 0
	lineNumber := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNumber++
		line := sc.Text()
		if line == SubPlayerToken {
			summary.Turns++
			turnsTaken.Inc()
			if name, err := queue.Top(); err != nil {
				fmt.Fprintln(w, "No one is ready!")
			} else {
				fmt.Fprintf(w, "%s enters the game.\n", name)
				queue.Pop()
			}
		} else {
			name, priorityStr, _ := strings.Cut(line, inlineDelimiter)
			priority, err := strconv.Atoi(priorityStr)
			if err != nil {
				return Summary{}, errors.Wrapf(err, "reading priority on line %d", lineNumber)
			}
			if err := queue.Insert(name, priority); err != nil {
				return Summary{}, errors.Wrapf(err, "queueing player on line %d", lineNumber)
			}
		}

		playersQueued.Set(float64(queue.Len()))
		queueCapacity.Set(float64(queue.Cap()))
		if r := queue.Resizes(); r > resizesSeen {
			queueResizes.Add(float64(r - resizesSeen))
			resizesSeen = r
		}
		logger.Debug().
			Int("line", lineNumber).
			Int("size", queue.Len()).
			Int("capacity", queue.Cap()).
			Int("resizes", queue.Resizes()).
			Msg("roster line processed")
	}
	if err := sc.Err(); err != nil {
		return Summary{}, errors.Wrapf(err, "reading roster")
	}

	summary.PlayersLeft = queue.Len()
	summary.Resizes = queue.Resizes()
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))
	fmt.Fprintf(w, "At the end, there were %d players left.\n", summary.PlayersLeft)
	fmt.Fprintf(w, "The array was resized %d times.\n", summary.Resizes)
	return summary, nil
}

func banner() string {
	pad := lineWidth - len(title) - 5
	return "### " + title + " " + strings.Repeat("#", pad)
}
