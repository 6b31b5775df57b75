// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package audit

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/alvinbaena/pwd-meter/internal/util"
	"github.com/alvinbaena/pwd-meter/pkg/strength"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
)

const (
	chunkLen         = 1024
	progressInterval = 10 * time.Second
	maxLineLen       = 16 * 1024 * 1024 // longest password line accepted
)

// Auditor evaluates a newline separated list of passwords and aggregates the results.
type Auditor struct {
	in          io.Reader
	parallelism int
	interval    time.Duration
	stat        *status
	mu          sync.Mutex
	summary     *Summary
}

// NewAuditor creates an auditor reading from in. A parallelism below 1 uses one worker per
// logical processor.
func NewAuditor(in io.Reader, parallelism int) *Auditor {
	return &Auditor{
		in:          in,
		parallelism: parallelism,
		interval:    progressInterval,
	}
}

// Run reads every line of the input and evaluates the passwords on a bounded worker pool.
// Blank lines are skipped.
func (a *Auditor) Run() (*Summary, error) {
	s := util.Stats()
	defer s()

	threads := a.parallelism
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	tasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return nil, err
	}
	defer tasks.Close()

	a.summary = newSummary()
	a.stat = newStatus(a.interval)
	a.stat.BeginProgress()
	log.Info().Msgf("auditing passwords with %d workers", threads)

	scanner := bufio.NewScanner(a.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	lines := make([]string, 0, chunkLen)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)

		if len(lines) == chunkLen {
			if err = tasks.Publish(a.processChunk, lines); err != nil {
				break
			}
			lines = make([]string, 0, chunkLen)
		}
	}
	if err == nil && len(lines) > 0 {
		err = tasks.Publish(a.processChunk, lines)
	}

	tasks.Wait()
	a.stat.Done()

	if err != nil {
		return nil, fmt.Errorf("error scheduling audit: %w", err)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading passwords: %w", err)
	}

	a.summary.finalize()
	return a.summary, nil
}

func (a *Auditor) processChunk(lines []string) {
	reports := make([]strength.Report, 0, len(lines))
	for _, line := range lines {
		reports = append(reports, strength.Analyze(line))
	}

	// The summary is shared by every worker.
	a.mu.Lock()
	for _, r := range reports {
		a.summary.add(r)
	}
	a.mu.Unlock()

	a.stat.Evaluated(len(reports))
}
