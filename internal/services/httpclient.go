package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// doRequest sends a prepared agent and returns the status code and body.
// The agent is released in every case. The effective timeout is the shorter
// of timeout and the context deadline.
func doRequest(ctx context.Context, agent *fiber.Agent, timeout time.Duration) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(agent)
		return 0, nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return 0, nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return code, body, errors.Join(errs...)
	}

	return code, body, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
