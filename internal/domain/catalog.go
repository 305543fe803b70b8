package domain

// Category groups drinks for guest browsing and admin grouping.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Mixer can be a pairing for an alcoholic drink, a standalone non-alcoholic
// option, or both, depending on the flag.
type Mixer struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	IsNonAlcoholicOption bool   `json:"isNonAlcoholicOption"`
}

type Drink struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	MixerIDs   []string `json:"mixerIds"`
}

// Event scopes the guest experience: only listed drinks are offered in the
// alcoholic flow, only listed mixers in the non-alcoholic flow.
type Event struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	DrinkIDs             []string `json:"drinkIds"`
	NonAlcoholicMixerIDs []string `json:"nonAlcoholicMixerIds"`
}
