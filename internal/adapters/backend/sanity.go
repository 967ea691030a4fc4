package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

// SanityPrompt is the question sent to the model.
const SanityPrompt = "Why is the sky blue?"

// SanityChecker implements ports.SanityChecker. The server checks only run
// when a self-hosted server is configured.
type SanityChecker struct {
	chat       Chatter
	server     *OllamaClient
	minVersion string
}

// NewSanityChecker creates a SanityChecker. server may be nil.
func NewSanityChecker(chat Chatter, server *OllamaClient, minVersion string) *SanityChecker {
	return &SanityChecker{chat: chat, server: server, minVersion: minVersion}
}

// SanityCheck lists running models, checks the server version and sends a short prompt.
func (s *SanityChecker) SanityCheck(ctx context.Context) (*domain.SanityReport, error) {
	report := &domain.SanityReport{}

	if s.server != nil {
		models, err := s.server.RunningModels(ctx)
		if err != nil {
			return nil, errors.Join(domain.ErrSanityCheckFailed, err)
		}
		if len(models) == 0 {
			return nil, errors.Join(domain.ErrSanityCheckFailed, domain.ErrNoRunningModels)
		}
		report.Models = models

		version, err := s.server.Version(ctx)
		if err != nil {
			return nil, errors.Join(domain.ErrSanityCheckFailed, err)
		}
		if err := checkVersion(version, s.minVersion); err != nil {
			return nil, errors.Join(domain.ErrSanityCheckFailed, err)
		}
		report.Version = version
	}

	reply, err := s.chat.Chat(ctx, "", SanityPrompt)
	if err != nil {
		return nil, errors.Join(domain.ErrSanityCheckFailed, err)
	}
	report.Reply = reply

	return report, nil
}

func checkVersion(version, minimum string) error {
	if minimum == "" {
		return nil
	}

	got, err := semver.NewVersion(version)
	if err != nil {
		return errors.Join(domain.ErrBackendResponseInvalid, zerr.With(err, "version", version))
	}
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid minimum version"), "minimum", minimum)
	}
	if !constraint.Check(got) {
		wrapped := zerr.Wrap(domain.ErrBackendVersionUnsupported, fmt.Sprintf("server version %s is older than %s", version, minimum))
		return zerr.With(wrapped, "version", version)
	}
	return nil
}
