package model

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a provider response lacks a required field.
var ErrMissingField = errors.New("missing required field")

// CompanyProfile holds descriptive and analyst data for a ticker.
// Only LongName is required; pointer fields are optional.
type CompanyProfile struct {
	Symbol       string
	LongName     string
	City         string
	State        string
	Industry     string
	Sector       string
	OfficerName  string
	OfficerTitle string
	Summary      string

	CurrentPrice    *float64
	TargetMeanPrice *float64
	TargetLowPrice  *float64
	TargetHighPrice *float64
}

// Validate fails fast when a required field is absent.
func (p *CompanyProfile) Validate() error {
	if p.LongName == "" {
		return fmt.Errorf("%w: longName for %s", ErrMissingField, p.Symbol)
	}
	return nil
}

// HasTargets reports whether both the current price and the mean target are known.
func (p *CompanyProfile) HasTargets() bool {
	return p.CurrentPrice != nil && p.TargetMeanPrice != nil
}
