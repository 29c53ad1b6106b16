package cli

import (
	"context"
	"fmt"
)

func (h *CLIHandler) Login(ctx context.Context, email, password string) error {
	resp, err := h.service.AuthService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Logged in as %s (%s)\n", resp.Username, resp.Email)
	return nil
}

func (h *CLIHandler) Register(ctx context.Context, username, email, password string) error {
	resp, err := h.service.AuthService.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "Registered and logged in as %s (%s)\n", resp.Username, resp.Email)
	return nil
}

func (h *CLIHandler) Logout(ctx context.Context) error {
	if err := h.service.AuthService.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(h.out, "Logged out")
	return nil
}

func (h *CLIHandler) Whoami(ctx context.Context) error {
	user, ok := h.session.User()
	if !ok {
		fmt.Fprintln(h.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(h.out, "Logged in as %s (%s)\n", user.Username, user.Email)
	return nil
}
