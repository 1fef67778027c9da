package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

var ErrNoToken = errors.New("no GitHub token: pass --personal-token, set GITHUB_TOKEN or run 'gh auth login'")

var ghBinary = "gh"

// ResolveToken returns explicit when set, otherwise the token the gh CLI is
// logged in with.
func ResolveToken(ctx context.Context, explicit string, logger *slog.Logger) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	out, err := runGH(ctx, logger, "auth", "token")
	if err != nil {
		logger.Debug("gh auth token failed", "err", err)
		return "", ErrNoToken
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", ErrNoToken
	}
	logger.Debug("using token from gh CLI")
	return token, nil
}

func runGH(ctx context.Context, logger *slog.Logger, args ...string) ([]byte, error) {
	logger.Debug("gh", "args", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, ghBinary, args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return nil, err
	}
	return out, nil
}
