package loop

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"
)

// clockTicksPerSec matches the Linux USER_HZ value every production
// kernel ships with; there is no portable syscall for it exposed by any
// example repo's dependency set, so it is a constant here rather than a
// runtime sysconf(_SC_CLK_TCK) lookup.
const clockTicksPerSec = 100

// Stats accumulates fps_ticks/cpu_ticks counters, rolling over every ~1s
// of wall time into the FPS and CPU-percent figures the debug HUD
// displays. No example repo reads /proc/self/stat; this is
// standard-library-only by necessity -- it is a Linux
// pseudo-file, not a library concern, and parsing two whitespace fields
// out of it does not justify pulling in a dependency.
type Stats struct {
	fpsTicks   int
	windowFPS  float64
	windowCPU  float64
	windowOpen time.Time
	lastCPU    time.Duration
}

// NewStats returns a Stats with its rollover window starting now.
func NewStats() *Stats {
	return &Stats{windowOpen: time.Now()}
}

// Tick records one presented frame and rolls the window over once ~1s
// has elapsed, recomputing FPS and CPU% from /proc/self/stat.
func (s *Stats) Tick() {
	s.fpsTicks++
	elapsed := time.Since(s.windowOpen)
	if elapsed < time.Second {
		return
	}

	s.windowFPS = float64(s.fpsTicks) / elapsed.Seconds()
	s.fpsTicks = 0

	cpu := readSelfCPUTime()
	delta := cpu - s.lastCPU
	s.windowCPU = 100 * delta.Seconds() / elapsed.Seconds()
	s.lastCPU = cpu
	s.windowOpen = time.Now()
}

// FPS returns the most recently rolled-over frames-per-second figure.
func (s *Stats) FPS() float64 { return s.windowFPS }

// CPUPercent returns the most recently rolled-over process CPU usage,
// as a percentage of one core.
func (s *Stats) CPUPercent() float64 { return s.windowCPU }

// readSelfCPUTime reads utime+stime (fields 14, 15) from
// /proc/self/stat and converts clock ticks to a duration. Returns 0 on
// any platform or parse failure (e.g. non-Linux) rather than erroring --
// the HUD simply shows 0% CPU there.
func readSelfCPUTime() time.Duration {
	f, err := os.Open("/proc/self/stat")
	if err != nil {
		return 0
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0
	}

	// Field 2 (comm) is parenthesized and may itself contain spaces, so
	// split after the closing paren rather than naively on whitespace.
	close := strings.LastIndexByte(line, ')')
	if close < 0 {
		return 0
	}
	fields := strings.Fields(line[close+1:])
	// After the comm field, field 14 (utime) is fields[11], field 15
	// (stime) is fields[12] (fields[0] here is field 3, state).
	if len(fields) < 13 {
		return 0
	}
	utime, err1 := strconv.ParseInt(fields[11], 10, 64)
	stime, err2 := strconv.ParseInt(fields[12], 10, 64)
	if err1 != nil || err2 != nil {
		return 0
	}
	ticks := utime + stime
	return time.Duration(ticks) * time.Second / clockTicksPerSec
}
