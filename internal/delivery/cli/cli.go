// Package cli renders service results to the terminal. It is the interactive
// surface of the client.
package cli

import (
	"io"

	"stock-backtest/internal/service"
	"stock-backtest/internal/session"
	"stock-backtest/pkg/logger"
)

type CLIHandler struct {
	out     io.Writer
	log     *logger.Logger
	service *service.Service
	session *session.Manager
}

func NewCLIHandler(out io.Writer, log *logger.Logger, svc *service.Service, sess *session.Manager) *CLIHandler {
	return &CLIHandler{
		out:     out,
		log:     log,
		service: svc,
		session: sess,
	}
}

func (h *CLIHandler) requireSession() error {
	if !h.session.Authenticated() {
		return service.ErrNotAuthenticated
	}
	return nil
}
