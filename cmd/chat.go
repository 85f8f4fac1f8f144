package main

import (
	"context"
	"fmt"

	"github.com/binarakost/kostctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// ChatAsk sends one message to the visitor assistant and prints the reply.
// The session id persists across invocations so follow-up questions keep
// their context.
func (r *Runner) ChatAsk(ctx context.Context, cmd *cli.Command) error {
	message := cmd.StringArg("message")
	if message == "" {
		return fmt.Errorf("%w: message argument is required", shared.ErrMissingArgument)
	}

	sessionID := r.chat.SessionID()
	r.logger.Infof("chat session %v", sessionID)

	reply := r.chat.Send(ctx, sessionID, message)
	return r.writePlain("%s\n", reply.Text)
}
