package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	evaluated uint64
	chunks    uint64
	start     time.Time
	ticker    *time.Ticker
	progress  chan bool
}

func newStatus(interval time.Duration) *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(interval),
		progress: make(chan bool),
	}
}

// BeginProgress reports the progress of the audit on every tick.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				p := message.NewPrinter(language.English)
				log.Info().Msgf("%s passwords evaluated. %.0f passwords/s",
					p.Sprintf("%d", atomic.LoadUint64(&s.evaluated)), s.perSecond())
			}
		}
	}()
}

func (s *status) Evaluated(n int) {
	atomic.AddUint64(&s.evaluated, uint64(n))
	atomic.AddUint64(&s.chunks, 1)
}

func (s *status) perSecond() float64 {
	elapsed := time.Since(s.start)
	evaluated := float64(atomic.LoadUint64(&s.evaluated))
	if elapsed.Nanoseconds() > 0 {
		return evaluated / elapsed.Seconds()
	}

	return evaluated
}

func (s *status) Done() {
	s.ticker.Stop()
	s.progress <- true

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished evaluating %s passwords in %v. %.0f passwords/s",
		p.Sprintf("%d", atomic.LoadUint64(&s.evaluated)), time.Since(s.start), s.perSecond())
	log.Debug().Msgf("processed %s chunks", p.Sprintf("%d", atomic.LoadUint64(&s.chunks)))
}
