package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeActionLedger_Add(t *testing.T) {
	tests := []struct {
		name      string
		input     TradeActionInput
		wantField string
	}{
		{
			name:  "valid buy",
			input: TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "100"},
		},
		{
			name:  "action is normalized to upper case",
			input: TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "sell", Shares: "50"},
		},
		{
			name:      "malformed date",
			input:     TradeActionInput{Date: "15-01-2024", Symbol: "2330", Action: "BUY", Shares: "100"},
			wantField: "date",
		},
		{
			name:      "empty symbol",
			input:     TradeActionInput{Date: "2024-01-15", Symbol: "  ", Action: "BUY", Shares: "100"},
			wantField: "symbol",
		},
		{
			name:      "unknown action",
			input:     TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "HOLD", Shares: "100"},
			wantField: "action",
		},
		{
			name:      "zero shares",
			input:     TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "0"},
			wantField: "shares",
		},
		{
			name:      "negative shares",
			input:     TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "-5"},
			wantField: "shares",
		},
		{
			name:      "non-numeric shares",
			input:     TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "abc"},
			wantField: "shares",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewTradeActionLedger()
			entry, err := ledger.Add(tt.input)

			if tt.wantField != "" {
				var invalidErr *InvalidTradeActionError
				require.ErrorAs(t, err, &invalidErr)
				assert.Equal(t, tt.wantField, invalidErr.Field)
				assert.Equal(t, 0, ledger.Len(), "ledger must be unchanged on failure")
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, 1, ledger.Len())
		})
	}
}

func TestTradeActionLedger_SortedViewIsStable(t *testing.T) {
	ledger := NewTradeActionLedger()

	// out of order dates, with two entries sharing a date
	inputs := []TradeActionInput{
		{Date: "2024-03-01", Symbol: "2330", Action: "SELL", Shares: "10"},
		{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "100"},
		{Date: "2024-03-01", Symbol: "0050", Action: "BUY", Shares: "20"},
		{Date: "2024-02-10", Symbol: "0050", Action: "BUY", Shares: "30"},
	}
	for _, in := range inputs {
		_, err := ledger.Add(in)
		require.NoError(t, err)
	}

	view := ledger.SortedView()
	require.Len(t, view, 4)
	assert.Equal(t, "2024-01-15", view[0].Date)
	assert.Equal(t, "2024-02-10", view[1].Date)
	// entries sharing a date keep insertion order
	assert.Equal(t, "2330", view[2].Symbol)
	assert.Equal(t, "0050", view[3].Symbol)

	// the sorted view is a projection: storage keeps insertion order
	snapshot := ledger.Snapshot()
	assert.Equal(t, "2024-03-01", snapshot[0].Date)
	assert.Equal(t, "2024-01-15", snapshot[1].Date)
}

func TestTradeActionLedger_RemoveByID(t *testing.T) {
	ledger := NewTradeActionLedger()

	first, err := ledger.Add(TradeActionInput{Date: "2024-03-01", Symbol: "2330", Action: "SELL", Shares: "10"})
	require.NoError(t, err)
	second, err := ledger.Add(TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "100"})
	require.NoError(t, err)

	// the sorted view puts second first; removal by id must not care
	view := ledger.SortedView()
	require.Equal(t, second.ID, view[0].ID)

	require.NoError(t, ledger.Remove(first.ID))
	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, second.ID, ledger.Snapshot()[0].ID)

	assert.ErrorIs(t, ledger.Remove("no-such-id"), ErrTradeActionNotFound)
}

func TestTradeActionLedger_Reset(t *testing.T) {
	ledger := NewTradeActionLedger()
	_, err := ledger.Add(TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "100"})
	require.NoError(t, err)

	ledger.Reset()
	assert.Equal(t, 0, ledger.Len())
	assert.Empty(t, ledger.SortedView())
}
