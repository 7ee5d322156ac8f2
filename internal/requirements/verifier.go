package requirements

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cartesi/cli/internal/process"
	"go.uber.org/zap"
)

// Verifier checks an ordered list of requirements against the local machine.
type Verifier struct {
	runner       process.Runner
	requirements []Requirement
	logger       *zap.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithRequirements replaces the default requirement chain.
func WithRequirements(reqs []Requirement) Option {
	return func(v *Verifier) {
		v.requirements = reqs
	}
}

// New creates a Verifier that invokes tools through runner.
func New(runner process.Runner, opts ...Option) *Verifier {
	v := &Verifier{
		runner:       runner,
		requirements: Default(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify runs every requirement in order and stops at the first one that is
// not met, which becomes the Outcome's Failure. An invocation failure that
// none of the requirement's classifications cover is returned unchanged as
// the error, with a nil Outcome.
func (v *Verifier) Verify(ctx context.Context) (*Outcome, error) {
	for _, req := range v.requirements {
		v.logger.Debug("checking requirement", zap.String("requirement", req.Name))

		result, err := v.check(ctx, req)
		if err != nil {
			v.logger.Debug("requirement check failed",
				zap.String("requirement", req.Name),
				zap.Error(err),
			)
			return nil, err
		}
		if !result.OK() {
			v.logger.Debug("requirement not met",
				zap.String("requirement", req.Name),
				zap.Stringer("kind", result.Kind),
			)
			return &Outcome{Failure: &result}, nil
		}
	}
	return &Outcome{}, nil
}

func (v *Verifier) check(ctx context.Context, req Requirement) (CheckResult, error) {
	out, err := v.runner.Run(ctx, req.Command, req.Args)
	if err != nil {
		return classify(req, err)
	}

	installed, ok := Satisfies(out, req.Minimum)
	if installed == nil {
		v.logger.Debug("no version in output, accepting", zap.String("requirement", req.Name))
	}
	if !ok {
		return CheckResult{
			Requirement: req.Name,
			Kind:        VersionUnsatisfied,
			Minimum:     req.Minimum,
			Installed:   installed,
			Message: fmt.Sprintf("Unsupported %s version. Minimum required version is %s. Installed version is %s.",
				req.Name, req.Minimum, installed),
		}, nil
	}

	if c := req.Capability; c != nil {
		listing, err := v.runner.Run(ctx, c.Command, c.Args)
		if err != nil {
			return classify(req, err)
		}
		if !hasToken(listing, c.Name) {
			return CheckResult{
				Requirement: req.Name,
				Kind:        CapabilityMissing,
				Capability:  c.Name,
				Message:     c.Remediation,
			}, nil
		}
	}

	return CheckResult{Requirement: req.Name, Kind: Satisfied}, nil
}

// classify maps an invocation error to a CheckResult when the requirement
// declares how to interpret it, and returns err untouched otherwise.
func classify(req Requirement, err error) (CheckResult, error) {
	if req.ReportAbsent && errors.Is(err, process.ErrNotFound) {
		return CheckResult{
			Requirement: req.Name,
			Kind:        ToolAbsent,
			Tool:        req.Tool,
			Message:     req.Name + " not found",
		}, nil
	}
	if req.UnusableExitCode != 0 {
		if code, ok := process.ExitCode(err); ok && code == req.UnusableExitCode {
			return CheckResult{
				Requirement: req.Name,
				Kind:        SubsystemUnusable,
				Message:     req.UnusableMessage,
			}, nil
		}
	}
	return CheckResult{}, err
}

// hasToken reports whether token appears in a comma-separated listing.
func hasToken(listing, token string) bool {
	for _, field := range strings.Split(listing, ",") {
		if strings.TrimSpace(field) == token {
			return true
		}
	}
	return false
}
