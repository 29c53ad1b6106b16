package model

// TradeAction is a ledger entry. ID is assigned once at creation and never
// reused; it survives any re-sorting of the display view.
type TradeAction struct {
	ID     string
	Date   string
	Symbol string
	Action string
	Shares int
}
