package service

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSymbols      = errors.New("at least one symbol is required")
	ErrTradeActionNotFound = errors.New("trade action not found")
	ErrSubmissionInFlight  = errors.New("a backtest submission is already in flight")
	ErrNotAuthenticated    = errors.New("not authenticated, please log in first")
)

// InvalidTradeActionError names the offending field of a rejected trade action.
type InvalidTradeActionError struct {
	Field  string
	Reason string
}

func (e *InvalidTradeActionError) Error() string {
	return fmt.Sprintf("invalid trade action: %s %s", e.Field, e.Reason)
}

type InvalidDateRangeError struct {
	StartDate string
	EndDate   string
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %q, end %q", e.StartDate, e.EndDate)
}

type InvalidCapitalError struct {
	Raw string
}

func (e *InvalidCapitalError) Error() string {
	return fmt.Sprintf("initial capital must be a positive number, got %q", e.Raw)
}

// DuplicateDateError reports two samples on the same date within one series,
// which is a precondition violation for reconciliation.
type DuplicateDateError struct {
	Key  string
	Date string
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("series %s has a duplicate sample on %s", e.Key, e.Date)
}

type UnknownScannerTypeError struct {
	ScannerType string
}

func (e *UnknownScannerTypeError) Error() string {
	return fmt.Sprintf("unknown scanner type %q", e.ScannerType)
}
