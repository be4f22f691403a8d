package port

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/warp-journal/warp-journal/internal/model"
)

const (
	// BasePort is the first candidate port. The viewer has no reserved
	// IANA port; this base sits in the user range and is stable across
	// releases so prior instances can be found.
	BasePort = 6193

	// rangeSize is the number of consecutive candidates probed.
	rangeSize = 10

	// ProbePath is the well-known liveness path served by the viewer.
	ProbePath = "/warp-journal"

	// ProbeHeader is the response header the viewer sets on ProbePath.
	// Requiring it keeps an unrelated HTTP server that happens to
	// answer on the probe path from being mistaken for a prior
	// instance.
	ProbeHeader = "X-Warp-Journal"

	// probeTimeout bounds the liveness probe so a foreign process that
	// accepts but never answers cannot stall the scan.
	probeTimeout = 300 * time.Millisecond
)

// ErrNoPortAvailable is returned when every candidate in the range is
// occupied by a foreign process. This is a fatal condition for the
// application: the viewer has nowhere to listen.
var ErrNoPortAvailable = errors.New("no suitable port found")

// Allocator scans the candidate range for a usable port.
//
// The allocator only tests availability — a returned free port is
// released immediately, and it is the caller's responsibility to open
// the actual listener afterward.
type Allocator struct {
	// basePort is the first candidate. Zero means BasePort.
	basePort int

	// client issues the liveness probes, bounded by probeTimeout.
	client *http.Client

	logger *slog.Logger
}

// NewAllocator creates an Allocator starting at basePort. Pass 0 for
// the default base. A nil logger disables debug output.
func NewAllocator(basePort int, logger *slog.Logger) *Allocator {
	if basePort <= 0 {
		basePort = BasePort
	}
	return &Allocator{
		basePort: basePort,
		client:   &http.Client{Timeout: probeTimeout},
		logger:   ensureLogger(logger),
	}
}

// Range returns the inclusive candidate port bounds.
func (a *Allocator) Range() (first, last int) {
	return a.basePort, a.basePort + rangeSize - 1
}

// UsablePort returns the first candidate that is either free or bound
// by a prior instance of this application.
//
// For each candidate:
//   - a successful localhost bind classifies it free; the test listener
//     is closed and the port returned.
//   - a failed bind triggers the liveness probe. Probe success means a
//     prior warp-journal instance owns the port, which is returned for
//     reuse. Probe failure means a foreign occupant; the scan moves on.
//
// When the whole range is exhausted, UsablePort fails with
// ErrNoPortAvailable.
func (a *Allocator) UsablePort() (model.PortCandidate, error) {
	first, last := a.Range()
	for port := first; port <= last; port++ {
		if a.bindable(port) {
			a.logger.Debug("found free port", "port", port)
			return model.PortCandidate{Port: port, State: model.PortFree}, nil
		}

		if a.probeSelf(port) {
			a.logger.Debug("reusing port held by a prior instance", "port", port)
			return model.PortCandidate{Port: port, State: model.PortBoundBySelf}, nil
		}

		a.logger.Debug("port occupied by a foreign process", "port", port)
	}

	return model.PortCandidate{}, fmt.Errorf("%w: ports %d-%d are all occupied by foreign processes",
		ErrNoPortAvailable, first, last)
}

// bindable reports whether a TCP listener can be bound to the port on
// localhost. The test listener is closed immediately: the allocator
// only answers "could the caller listen here", it does not hold the
// port.
func (a *Allocator) bindable(port int) bool {
	ln, err := net.Listen("tcp", net.JoinHostPort("localhost", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

// probeSelf issues the liveness probe against an occupied port. Only an
// HTTP 200 carrying the ProbeHeader counts as self-identification;
// connection errors, timeouts, error statuses, and responses without
// the header all classify the occupant as foreign.
func (a *Allocator) probeSelf(port int) bool {
	url := fmt.Sprintf("http://localhost:%d%s", port, ProbePath)
	resp, err := a.client.Get(url)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK && resp.Header.Get(ProbeHeader) != ""
}

// ensureLogger substitutes a discard logger for nil.
func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
