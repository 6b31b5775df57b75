// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/alvinbaena/pwd-meter/pkg/strength"
)

func TestAuditor(t *testing.T) {
	input := strings.Join([]string{
		"aaaa",
		"mypassword123",
		"",
		"correct horse battery staple",
		"Tr0ub4dor&3xyzQ!\r",
		"1234",
	}, "\n")

	summary, err := NewAuditor(strings.NewReader(input), 2).Run()
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}

	if summary.Total != 5 {
		t.Errorf("Total should be 5, have %d", summary.Total)
	}

	wantLevels := map[strength.Level]uint64{
		strength.VeryWeak: 2,
		strength.Weak:     1,
		strength.Fair:     1,
		strength.Strong:   1,
	}
	for level, want := range wantLevels {
		if summary.Levels[level] != want {
			t.Errorf("Level %s: %d, want: %d", level, summary.Levels[level], want)
		}
	}

	// scores: 0, 0, 40, 65, 85
	if summary.MedianScore != 40 {
		t.Errorf("Median should be 40, have %d", summary.MedianScore)
	}
	if summary.P90Score != 85 {
		t.Errorf("P90 should be 85, have %d", summary.P90Score)
	}
	if summary.MeanScore != 38 {
		t.Errorf("Mean should be 38, have %.2f", summary.MeanScore)
	}

	if len(summary.Issues) == 0 {
		t.Fatalf("Issues should be counted")
	}
	top := summary.Issues[0]
	if top.Count != 2 {
		t.Errorf("Most common issue should appear twice, have %+v", top)
	}
}

func TestAuditor_ManyChunks(t *testing.T) {
	var sb strings.Builder
	n := chunkLen*3 + 17
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("pw-%d-Xy\n", i))
	}

	summary, err := NewAuditor(strings.NewReader(sb.String()), 0).Run()
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}
	if summary.Total != uint64(n) {
		t.Errorf("Total should be %d, have %d", n, summary.Total)
	}
}

func TestAuditor_LongLine(t *testing.T) {
	input := "aaaa\n" + strings.Repeat("x", 70*1024) + "\nmypassword123\n"

	summary, err := NewAuditor(strings.NewReader(input), 1).Run()
	if err != nil {
		t.Fatalf("Should not fail on a line longer than 64 KiB: %s", err)
	}
	if summary.Total != 3 {
		t.Errorf("Total should be 3, have %d", summary.Total)
	}
}

func TestAuditor_Empty(t *testing.T) {
	summary, err := NewAuditor(strings.NewReader("\n\n"), 1).Run()
	if err != nil {
		t.Fatalf("Should not fail: %s", err)
	}
	if summary.Total != 0 {
		t.Errorf("Total should be 0, have %d", summary.Total)
	}

	var buf bytes.Buffer
	if err = summary.Print(&buf); err != nil {
		t.Fatalf("Print should not fail: %s", err)
	}
	if !strings.Contains(buf.String(), "Audited 0 passwords") {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

func TestSummary_Print(t *testing.T) {
	s := newSummary()
	for i := 0; i < 1500; i++ {
		s.add(strength.Analyze("aaaa"))
	}
	s.finalize()

	var buf bytes.Buffer
	if err := s.Print(&buf); err != nil {
		t.Fatalf("Print should not fail: %s", err)
	}

	out := buf.String()
	for _, want := range []string{"Audited 1,500 passwords", "Very weak", "100.0%", strength.IssueRepetition} {
		if !strings.Contains(out, want) {
			t.Errorf("Output should contain %q:\n%s", want, out)
		}
	}
}

func TestPercentile(t *testing.T) {
	cases := []struct {
		sorted []uint64
		p      float64
		want   uint64
	}{
		{[]uint64{}, 0.5, 0},
		{[]uint64{7}, 0.9, 7},
		{[]uint64{1, 2, 3, 4}, 0.5, 2},
		{[]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9},
		{[]uint64{1, 2, 3}, 0, 1},
	}

	for _, tc := range cases {
		if got := percentile(tc.sorted, tc.p); got != tc.want {
			t.Errorf("percentile(%v, %.1f): %d, want: %d", tc.sorted, tc.p, got, tc.want)
		}
	}
}
