package domain

// Config is the aggregate root: the entire persisted state. No entity exists
// or is addressable outside this aggregate.
type Config struct {
	Categories []Category `json:"categories"`
	Mixers     []Mixer    `json:"mixers"`
	Drinks     []Drink    `json:"drinks"`
	Events     []Event    `json:"events"`
	Bookings   []Booking  `json:"bookings"`
}

// DefaultConfig returns an empty aggregate with all collections allocated.
func DefaultConfig() Config {
	return Config{
		Categories: []Category{},
		Mixers:     []Mixer{},
		Drinks:     []Drink{},
		Events:     []Event{},
		Bookings:   []Booking{},
	}
}

// Normalize defaults collections and nested id lists that older persisted
// documents may lack. There is no schema version field; this is the whole
// forward-compatibility story.
func (c Config) Normalize() Config {
	if c.Categories == nil {
		c.Categories = []Category{}
	}
	if c.Mixers == nil {
		c.Mixers = []Mixer{}
	}
	if c.Drinks == nil {
		c.Drinks = []Drink{}
	}
	if c.Events == nil {
		c.Events = []Event{}
	}
	if c.Bookings == nil {
		c.Bookings = []Booking{}
	}
	for i := range c.Drinks {
		if c.Drinks[i].MixerIDs == nil {
			c.Drinks[i].MixerIDs = []string{}
		}
	}
	for i := range c.Events {
		if c.Events[i].DrinkIDs == nil {
			c.Events[i].DrinkIDs = []string{}
		}
		if c.Events[i].NonAlcoholicMixerIDs == nil {
			c.Events[i].NonAlcoholicMixerIDs = []string{}
		}
	}
	return c
}

// Clone deep-copies the aggregate so that mutations never alias slices held
// by the authoritative copy.
func (c Config) Clone() Config {
	out := c
	out.Categories = append([]Category{}, c.Categories...)
	out.Mixers = append([]Mixer{}, c.Mixers...)
	out.Bookings = append([]Booking{}, c.Bookings...)
	out.Drinks = make([]Drink, len(c.Drinks))
	for i, d := range c.Drinks {
		d.MixerIDs = append([]string{}, d.MixerIDs...)
		out.Drinks[i] = d
	}
	out.Events = make([]Event, len(c.Events))
	for i, ev := range c.Events {
		ev.DrinkIDs = append([]string{}, ev.DrinkIDs...)
		ev.NonAlcoholicMixerIDs = append([]string{}, ev.NonAlcoholicMixerIDs...)
		out.Events[i] = ev
	}
	return out
}

// CategoryByID returns the category with the given id, if present.
func (c Config) CategoryByID(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

func (c Config) MixerByID(id string) (Mixer, bool) {
	for _, m := range c.Mixers {
		if m.ID == id {
			return m, true
		}
	}
	return Mixer{}, false
}

func (c Config) DrinkByID(id string) (Drink, bool) {
	for _, d := range c.Drinks {
		if d.ID == id {
			return d, true
		}
	}
	return Drink{}, false
}

func (c Config) EventByID(id string) (Event, bool) {
	for _, ev := range c.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}
