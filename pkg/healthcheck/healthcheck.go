// Package healthcheck verifies the external tools devyard delegates to.
//
// Two consumers: the dispatch preflight, which wants a fast yes/no before
// any command runs, and the doctor command, which runs every checker and
// prints a readable report.
package healthcheck

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/serum-errors/go-serum"

	"github.com/devyard/devyard/dyapi"
)

const (
	CodeRunOkay      = "devyard-error-healthcheck-run-okay"
	CodeRunFailure   = "devyard-error-healthcheck-run-fail"
	CodeRunAmbiguous = "devyard-error-healthcheck-run-ambiguous"
)

type Status int

const (
	// StatusNone is the zero value and used for unset status values.
	StatusNone Status = iota
	StatusOkay
	StatusFail
	StatusAmbiguous
	StatusUnknown
)

// Characters used to display status.
const (
	statusCharacter_None      = "∅"
	statusCharacter_Okay      = "✔"
	statusCharacter_Failure   = "✘"
	statusCharacter_Ambiguous = "?"
	statusCharacter_Unknown   = "!"
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return statusCharacter_None
	case StatusOkay:
		return statusCharacter_Okay
	case StatusAmbiguous:
		return statusCharacter_Ambiguous
	case StatusFail:
		return statusCharacter_Failure
	default:
		return statusCharacter_Unknown
	}
}

type Runner interface {
	// Run returns a serum error that contains a human readable message
	// and one of the healthcheck status codes.  Runner should not return nil.
	// Errors:
	//
	//    - devyard-error-healthcheck-run-okay --
	//    - devyard-error-healthcheck-run-fail --
	//    - devyard-error-healthcheck-run-ambiguous --
	Run(context.Context) error
	// String should be a short header naming the checker.
	String() string
}

type HealthCheck struct {
	Runners []Runner
	Results []serum.ErrorInterfaceWithMessage
}

// Run executes all the runners assigned to this health check.
// Errors: none -- results are stored for printing
func (h *HealthCheck) Run(ctx context.Context) error {
	h.Results = make([]serum.ErrorInterfaceWithMessage, 0, len(h.Runners))
	for _, runnable := range h.Runners {
		err := runnable.Run(ctx)
		result, ok := err.(serum.ErrorInterfaceWithMessage)
		if !ok {
			result = serum.Errorf(CodeRunFailure, "runner has invalid interface: %w", err).(serum.ErrorInterfaceWithMessage)
		}
		h.Results = append(h.Results, result)
	}
	return nil
}

// AnyFailed reports whether any runner came back with a hard failure.
func (h *HealthCheck) AnyFailed() bool {
	for _, result := range h.Results {
		if StatusOf(result) == StatusFail {
			return true
		}
	}
	return false
}

// Fprint emits formatted text of run results to the writer.
// Errors:
//
//    - devyard-error-internal -- when the health check was not run before printing results
func (h *HealthCheck) Fprint(w io.Writer) error {
	if len(h.Runners) != len(h.Results) {
		return serum.Error(dyapi.ECodeInternal,
			serum.WithMessageLiteral("health check must run before printing results"),
		)
	}
	headers := make([]string, 0, len(h.Runners))
	maxHeaderLen := 0
	for _, runner := range h.Runners {
		header := runner.String()
		headers = append(headers, header)
		if len(header) > maxHeaderLen {
			maxHeaderLen = len(header)
		}
	}
	for i, result := range h.Results {
		status := StatusOf(result)
		statusStr := h.TermColor(status).Sprint(status)
		fmt.Fprintf(w, " %s  %-*s\t%s\n", statusStr, maxHeaderLen, headers[i], result.Message())
	}
	return nil
}

func (h *HealthCheck) TermColor(s Status) *color.Color {
	result := color.New()
	switch s {
	case StatusNone:
		return result.Add(color.Reset)
	case StatusOkay:
		return result.Add(color.FgHiGreen, color.Bold)
	case StatusAmbiguous:
		return result.Add(color.FgHiYellow, color.Bold)
	case StatusFail:
		return result.Add(color.FgHiRed, color.Bold)
	default:
		return result.Add(color.FgHiMagenta, color.Bold)
	}
}

// StatusOf converts serum codes to status enumeration values.
func StatusOf(err error) Status {
	if err == nil {
		return StatusNone
	}
	if _, ok := err.(serum.ErrorInterface); !ok {
		return StatusNone
	}
	switch serum.Code(err) {
	case CodeRunFailure:
		return StatusFail
	case CodeRunOkay:
		return StatusOkay
	case CodeRunAmbiguous:
		return StatusAmbiguous
	default:
		return StatusUnknown
	}
}
