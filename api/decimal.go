package api

import "github.com/shopspring/decimal"

func init() {
	// budget and revenue are numbers in the API contract, not strings
	decimal.MarshalJSONWithoutQuotes = true
}
