package util

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Stats logs the elapsed time and memory use of a process when the returned func is called.
func Stats() func() {
	start := time.Now()
	return func() {
		log.Debug().Msgf("time to run %v", time.Since(start))
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("Verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("Profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf("localhost:%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("Error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ToScreamingSnakeCase turns a Go field name (TLSCert) or a list of them (TLSCert TLSKey) into
// the environment variable spelling (TLS_CERT TLS_KEY).
func ToScreamingSnakeCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = screamingSnake(w)
	}

	return strings.Join(words, " ")
}

func screamingSnake(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(unicode.ToUpper(r))
	}

	return sb.String()
}
