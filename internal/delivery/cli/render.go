package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
	"stock-backtest/internal/service"
	"stock-backtest/pkg/utils"
)

// absentCell marks a date a series has no sample on. It is rendering only;
// the underlying row keeps nil so nothing downstream mistakes it for zero.
const absentCell = "-"

func (h *CLIHandler) renderLedger(entries []model.TradeAction) {
	table := tablewriter.NewWriter(h.out)
	table.Header("Date", "Symbol", "Action", "Shares")
	for _, entry := range entries {
		table.Append(entry.Date, entry.Symbol, entry.Action, strconv.Itoa(entry.Shares))
	}
	table.Render()
}

func (h *CLIHandler) renderBacktestSummary(result *dto.BacktestResult) {
	table := tablewriter.NewWriter(h.out)
	table.Header("Metric", "Value")
	table.Append("Initial capital", utils.FormatMoney(result.InitialCapital))
	table.Append("Final value", utils.FormatMoney(result.FinalValue))
	table.Append("Total return", h.signed(result.TotalReturn, utils.FormatMoney(result.TotalReturn)))
	table.Append("Return rate", h.signed(result.ReturnRate, utils.FormatPercentage(result.ReturnRate)))
	table.Append("Sharpe ratio (ann.)", fmt.Sprintf("%.2f", result.AnnualizedSharpeRatio))
	table.Append("Max drawdown", fmt.Sprintf("%.2f%%", result.MaxDrawdown))
	table.Append("Trading days", strconv.Itoa(result.TradingDays))
	table.Render()
}

// signed tags a formatted value with its sign class so gains and losses read
// apart in a monochrome terminal.
func (h *CLIHandler) signed(value float64, formatted string) string {
	if h.service.Presenter.SignClass(value) == dto.SignNegative {
		return formatted + " (down)"
	}
	return formatted + " (up)"
}

func (h *CLIHandler) renderHoldings(holdings []service.Holding) {
	table := tablewriter.NewWriter(h.out)
	table.Header("Symbol", "Shares")
	for _, holding := range holdings {
		table.Append(holding.Symbol, strconv.Itoa(holding.Shares))
	}
	table.Render()
}

func (h *CLIHandler) renderReconciledRows(series []service.Series, rows []service.ReconciledRow) {
	header := make([]any, 0, len(series)+1)
	header = append(header, "Date")
	for _, s := range series {
		header = append(header, s.Key)
	}

	table := tablewriter.NewWriter(h.out)
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, 0, len(header))
		cells = append(cells, row.Date)
		for _, s := range series {
			if v := row.Values[s.Key]; v != nil {
				cells = append(cells, utils.FormatMoney(*v))
			} else {
				cells = append(cells, absentCell)
			}
		}
		table.Append(cells...)
	}
	table.Render()
}

func (h *CLIHandler) renderScannerResponse(resp *dto.ScannerResponse) {
	fmt.Fprintf(h.out, "%s on %s (%d rows)\n", resp.ScannerType, resp.Date, resp.Count)

	table := tablewriter.NewWriter(h.out)
	table.Header("Code", "Name", "Close", "Change", "Change %", "Volume")
	for _, row := range resp.Data {
		table.Append(
			stringCell(row["code"]),
			stringCell(row["name"]),
			floatCell(row["close"], 2),
			floatCell(row["change"], 2),
			floatCell(row["change_percent"], 2),
			floatCell(row["volume"], 0),
		)
	}
	table.Render()
}

func (h *CLIHandler) renderPieChart(resp *dto.PieChartResponse) {
	fmt.Fprintf(h.out, "Portfolio total: %s\n", utils.FormatMoney(resp.TotalValue))

	table := tablewriter.NewWriter(h.out)
	table.Header("Position", "Value", "Share")
	for _, slice := range resp.Positions {
		table.Append(slice.Label, utils.FormatMoney(slice.Value), fmt.Sprintf("%.2f%%", slice.Percentage))
	}
	table.Render()
}

// stringCell and floatCell tolerate the loosely-typed scanner rows, which
// arrive as generic JSON.
func stringCell(v interface{}) string {
	s, _ := v.(string)
	return s
}

func floatCell(v interface{}, decimals int) string {
	f, ok := v.(float64)
	if !ok {
		return absentCell
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}
