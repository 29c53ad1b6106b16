package dto

const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
)

const (
	SignPositive = "positive"
	SignNegative = "negative"
)

// Scanner rankings exposed by the platform.
const (
	ScannerChangePercentRank = "ChangePercentRank"
	ScannerChangePriceRank   = "ChangePriceRank"
	ScannerVolumeRank        = "VolumeRank"
	ScannerAmountRank        = "AmountRank"
	ScannerDayRangeRank      = "DayRangeRank"
)

func ScannerTypes() []string {
	return []string{
		ScannerChangePercentRank,
		ScannerChangePriceRank,
		ScannerVolumeRank,
		ScannerAmountRank,
		ScannerDayRangeRank,
	}
}
