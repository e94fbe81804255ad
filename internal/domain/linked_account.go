package domain

import "time"

// LinkedAccount holds the opaque access token the aggregator issued for
// one linked institution. Created on successful token exchange, never
// mutated; account/transaction/liability fetches replay this token to the
// aggregator on every request.
type LinkedAccount struct {
	ID              string
	UserID          string
	AccessToken     string
	ItemID          string // aggregator-side identifier for the linked item
	InstitutionName string
	CreatedAt       time.Time
}
