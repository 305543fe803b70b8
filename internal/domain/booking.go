package domain

// Booking is the immutable record of one guest's finalized selection. It is a
// point-in-time snapshot and is never re-validated against the current
// catalog; it may reference entities that no longer exist.
type Booking struct {
	ID                string `json:"id"`
	EventID           string `json:"eventId"`
	CreatedAt         string `json:"createdAt"`
	GuestName         string `json:"guestName,omitempty"`
	IsAlcoholicChoice bool   `json:"isAlcoholicChoice"`
	DrinkID           string `json:"drinkId,omitempty"`
	MixerID           string `json:"mixerId,omitempty"`
	SummaryText       string `json:"summaryText"`
}
