package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvlath-ga/genetic"
)

// RouteSeparator joins city names in printed routes.
const RouteSeparator = " -> "

// WriteSummary prints the best route and its length:
//
//	Best path: A -> B -> C -> A
//	Total distance: 12.34
//	Generations: 2,000 (crossings: 125,000)
func WriteSummary(w io.Writer, res genetic.Result) error {
	_, err := fmt.Fprintf(w,
		"Best path: %s\nTotal distance: %.2f\nGenerations: %s (crossings: %s)\n",
		strings.Join(res.Route, RouteSeparator),
		res.Length,
		humanize.Comma(int64(res.Generations)),
		humanize.Comma(int64(res.Crossings)),
	)

	return err
}

// WriteGap prints how far found is above the optimum, in percent.
func WriteGap(w io.Writer, found, optimum float64) error {
	_, err := fmt.Fprintf(w, "Optimal distance: %.2f (gap %s%%)\n", optimum, percentAbove(found, optimum))

	return err
}

// WriteBound prints a lower bound and the largest gap it allows.
func WriteBound(w io.Writer, found, bound float64) error {
	_, err := fmt.Fprintf(w, "Lower bound: %.2f (gap at most %s%%)\n", bound, percentAbove(found, bound))

	return err
}

func percentAbove(x, ref float64) string {
	if ref <= 0 {
		return "0"
	}

	return humanize.FtoaWithDigits((x-ref)/ref*100, 2)
}
