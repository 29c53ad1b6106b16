package service

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/model"
	"stock-backtest/pkg/utils"
)

// TradeActionInput is raw form input for one trade instruction. Shares arrives
// as text, exactly as the user typed it.
type TradeActionInput struct {
	Date   string
	Symbol string
	Action string
	Shares string
}

// TradeActionLedger owns the pending trade instructions. Entries keep their
// insertion order; the sorted view is a derived projection and is never a
// mutation target. Removal is addressed by the stable id only, since a position
// in the sorted view does not correspond to storage order.
type TradeActionLedger struct {
	mu      sync.Mutex
	entries []model.TradeAction
}

func NewTradeActionLedger() *TradeActionLedger {
	return &TradeActionLedger{}
}

// Add validates the candidate and appends it with a fresh id. The ledger is
// left unchanged on failure.
func (l *TradeActionLedger) Add(in TradeActionInput) (model.TradeAction, error) {
	if _, err := utils.ParseDate(in.Date); err != nil {
		return model.TradeAction{}, &InvalidTradeActionError{Field: "date", Reason: "must be a calendar date (YYYY-MM-DD)"}
	}

	symbol := strings.TrimSpace(in.Symbol)
	if symbol == "" {
		return model.TradeAction{}, &InvalidTradeActionError{Field: "symbol", Reason: "must not be empty"}
	}

	action := strings.ToUpper(strings.TrimSpace(in.Action))
	if action != dto.ActionBuy && action != dto.ActionSell {
		return model.TradeAction{}, &InvalidTradeActionError{Field: "action", Reason: "must be BUY or SELL"}
	}

	shares, err := strconv.Atoi(strings.TrimSpace(in.Shares))
	if err != nil || shares < 1 {
		return model.TradeAction{}, &InvalidTradeActionError{Field: "shares", Reason: "must be a positive integer"}
	}

	entry := model.TradeAction{
		ID:     uuid.NewString(),
		Date:   in.Date,
		Symbol: symbol,
		Action: action,
		Shares: shares,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return entry, nil
}

// Remove deletes the entry with the given id.
func (l *TradeActionLedger) Remove(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, entry := range l.entries {
		if entry.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return ErrTradeActionNotFound
}

// SortedView returns the entries ascending by date; entries sharing a date
// keep their relative insertion order. ISO dates sort lexicographically.
func (l *TradeActionLedger) SortedView() []model.TradeAction {
	out := l.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// Snapshot returns an insertion-ordered copy for request building.
func (l *TradeActionLedger) Snapshot() []model.TradeAction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.TradeAction, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *TradeActionLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Reset discards every entry, e.g. after a submission the user is done with.
func (l *TradeActionLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
