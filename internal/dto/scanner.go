package dto

// ScannerRequest is the body of POST /api/scanner/data. Field names follow the
// platform's wire contract.
type ScannerRequest struct {
	ScannerType string `json:"scanner_type" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Count       int    `json:"count" validate:"gt=0"`
	Ascending   bool   `json:"ascending"`
}

// ScannerResponse carries ranking rows as loosely-typed maps; each scanner type
// contributes its own metric columns.
type ScannerResponse struct {
	Data        []map[string]interface{} `json:"data"`
	Timestamp   string                   `json:"timestamp,omitempty"`
	ScannerType string                   `json:"scanner_type"`
	Date        string                   `json:"date"`
	Count       int                      `json:"count"`
}
