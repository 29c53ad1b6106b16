package cli

import (
	"context"
)

func (h *CLIHandler) Portfolio(ctx context.Context) error {
	if err := h.requireSession(); err != nil {
		return err
	}

	resp, err := h.service.AccountService.PortfolioPieChart(ctx)
	if err != nil {
		return err
	}

	h.renderPieChart(resp)
	return nil
}
