package audit

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/jfcg/sorty/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// IssueCount is how many audited passwords raised an issue.
type IssueCount struct {
	Issue string
	Count uint64
}

// Summary aggregates the reports of an audit. It never holds the passwords themselves.
type Summary struct {
	Total       uint64
	Levels      map[strength.Level]uint64
	Issues      []IssueCount
	MeanScore   float64
	MedianScore uint64
	P90Score    uint64
	MeanEntropy float64

	scores     []uint64
	issues     map[string]uint64
	entropySum uint64
}

func newSummary() *Summary {
	return &Summary{
		Levels: make(map[strength.Level]uint64, len(strength.Levels)),
		issues: make(map[string]uint64),
	}
}

func (s *Summary) add(r strength.Report) {
	s.Total++
	s.Levels[r.Level]++
	s.scores = append(s.scores, uint64(r.Score))
	s.entropySum += uint64(r.Entropy)
	for _, issue := range r.Issues {
		s.issues[issue]++
	}
}

// finalize computes the aggregates once every report was added.
func (s *Summary) finalize() {
	if s.Total == 0 {
		return
	}

	sorty.SortSlice(s.scores)

	sum := uint64(0)
	for _, v := range s.scores {
		sum += v
	}
	s.MeanScore = float64(sum) / float64(s.Total)
	s.MedianScore = percentile(s.scores, 0.5)
	s.P90Score = percentile(s.scores, 0.9)
	s.MeanEntropy = float64(s.entropySum) / float64(s.Total)

	s.Issues = make([]IssueCount, 0, len(s.issues))
	for issue, count := range s.issues {
		s.Issues = append(s.Issues, IssueCount{Issue: issue, Count: count})
	}
	sort.Slice(s.Issues, func(i, j int) bool {
		if s.Issues[i].Count != s.Issues[j].Count {
			return s.Issues[i].Count > s.Issues[j].Count
		}
		return s.Issues[i].Issue < s.Issues[j].Issue
	})
}

// percentile uses the nearest-rank method on a sorted slice.
func percentile(sorted []uint64, p float64) uint64 {
	if len(sorted) == 0 {
		return 0
	}

	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}

	return sorted[rank]
}

// Print writes a human readable summary.
func (s *Summary) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Audited %d passwords\n\n", s.Total); err != nil {
		return err
	}
	if s.Total == 0 {
		return nil
	}

	for _, level := range strength.Levels {
		count := s.Levels[level]
		if _, err := p.Fprintf(w, "  %-12s %10d  (%5.1f%%)\n", level.String(), count, float64(count)*100/float64(s.Total)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nScore: mean %.1f, median %d, p90 %d\nEntropy: mean %.1f bits\n",
		s.MeanScore, s.MedianScore, s.P90Score, s.MeanEntropy); err != nil {
		return err
	}

	if len(s.Issues) > 0 {
		if _, err := fmt.Fprintln(w, "\nMost common issues:"); err != nil {
			return err
		}
		for _, ic := range s.Issues {
			if _, err := p.Fprintf(w, "  %10d  %s\n", ic.Count, ic.Issue); err != nil {
				return err
			}
		}
	}

	return nil
}
