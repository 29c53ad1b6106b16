package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-backtest/internal/service"
)

func TestParseTradeSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    service.TradeActionInput
		wantErr bool
	}{
		{
			name: "valid spec",
			spec: "2024-01-15:2330:BUY:100",
			want: service.TradeActionInput{Date: "2024-01-15", Symbol: "2330", Action: "BUY", Shares: "100"},
		},
		{
			name: "fields pass through untouched",
			spec: "2024-01-15:0050:sell:50",
			want: service.TradeActionInput{Date: "2024-01-15", Symbol: "0050", Action: "sell", Shares: "50"},
		},
		{name: "too few fields", spec: "2024-01-15:2330:BUY", wantErr: true},
		{name: "too many fields", spec: "2024-01-15:2330:BUY:100:extra", wantErr: true},
		{name: "empty", spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTradeSpec(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
