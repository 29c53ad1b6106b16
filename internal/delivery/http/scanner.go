package http

import (
	"math/rand"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"stock-backtest/internal/dto"
	"stock-backtest/pkg/utils"
)

func (h *HttpAPIHandler) SetupScanner(base *echo.Group) {
	scannerGroup := base.Group("/scanner")
	scannerGroup.POST("/data", h.scannerData, h.requireToken)
}

var scannerUniverse = []struct {
	code string
	name string
}{
	{"2330", "TSMC"},
	{"0050", "Taiwan 50 ETF"},
	{"2317", "Hon Hai"},
	{"2454", "MediaTek"},
	{"2603", "Evergreen Marine"},
	{"2881", "Fubon Financial"},
	{"3008", "Largan"},
	{"2412", "Chunghwa Telecom"},
	{"1301", "Formosa Plastics"},
	{"2882", "Cathay Financial"},
	{"2002", "China Steel"},
	{"2303", "UMC"},
}

var scannerSortKeys = map[string]string{
	dto.ScannerChangePercentRank: "change_percent",
	dto.ScannerChangePriceRank:   "change",
	dto.ScannerVolumeRank:        "volume",
	dto.ScannerAmountRank:        "amount",
	dto.ScannerDayRangeRank:      "day_range",
}

func (h *HttpAPIHandler) scannerData(c echo.Context) error {
	req := new(dto.ScannerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	sortKey, known := scannerSortKeys[req.ScannerType]
	if !known {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("unknown scanner_type "+req.ScannerType))
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("date must be a calendar date (YYYY-MM-DD)"))
	}

	rows := make([]map[string]interface{}, 0, len(scannerUniverse))
	for _, stock := range scannerUniverse {
		rng := rand.New(rand.NewSource(int64(symbolSeed(stock.code + req.Date))))
		closePrice := roundTo(40+float64(symbolSeed(stock.code)%400), 2)
		change := roundTo((rng.Float64()-0.5)*closePrice*0.14, 2)
		volume := float64(rng.Intn(90_000_000) + 500_000)

		rows = append(rows, map[string]interface{}{
			"code":           stock.code,
			"name":           stock.name,
			"close":          closePrice,
			"change":         change,
			"change_percent": roundTo(change/closePrice*100, 2),
			"volume":         volume,
			"amount":         roundTo(volume*closePrice, 0),
			"day_range":      roundTo(rng.Float64()*10, 2),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, _ := rows[i][sortKey].(float64)
		b, _ := rows[j][sortKey].(float64)
		if req.Ascending {
			return a < b
		}
		return a > b
	})

	if req.Count < len(rows) {
		rows = rows[:req.Count]
	}

	return c.JSON(http.StatusOK, dto.ScannerResponse{
		Data:        rows,
		Timestamp:   time.Now().Format(time.RFC3339),
		ScannerType: req.ScannerType,
		Date:        req.Date,
		Count:       len(rows),
	})
}
