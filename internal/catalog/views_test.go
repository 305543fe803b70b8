package catalog

import (
	"testing"

	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrinksForEvent_CatalogOrderAndFiltering(t *testing.T) {
	cfg := domain.Config{
		Drinks: []domain.Drink{
			{ID: "a", Name: "A", CategoryID: "c"},
			{ID: "b", Name: "B", CategoryID: "c"},
			{ID: "c", Name: "C", CategoryID: "c"},
		},
		Events: []domain.Event{
			// Listed out of catalog order on purpose.
			{ID: "ev", DrinkIDs: []string{"b", "a"}},
		},
	}
	ev := cfg.Events[0]

	got := DrinksForEvent(cfg, ev)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	// Deleting a drink from the catalog makes its event reference invisible.
	next, err := DeleteDrink(cfg, "a")
	require.NoError(t, err)
	ev, _ = next.EventByID("ev")
	got = DrinksForEvent(next, ev)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestDrinksForEvent_DanglingReferenceDropped(t *testing.T) {
	cfg := domain.Config{
		Drinks: []domain.Drink{{ID: "b", Name: "B"}},
	}
	ev := domain.Event{ID: "ev", DrinkIDs: []string{"gone", "b"}}

	got := DrinksForEvent(cfg, ev)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestNonAlcoholicOptionsForEvent(t *testing.T) {
	cfg := domain.Config{
		Mixers: []domain.Mixer{
			{ID: "cola", IsNonAlcoholicOption: true},
			{ID: "tonic", IsNonAlcoholicOption: false},
			{ID: "lemonade", IsNonAlcoholicOption: true},
		},
	}
	ev := domain.Event{NonAlcoholicMixerIDs: []string{"cola", "tonic", "juice"}}

	got := NonAlcoholicOptionsForEvent(cfg, ev)
	require.Len(t, got, 1)
	assert.Equal(t, "cola", got[0].ID)
}

func TestMixersForDrink_DropsDangling(t *testing.T) {
	cfg := domain.Config{
		Mixers: []domain.Mixer{{ID: "tonic", Name: "Tonic"}},
	}
	d := domain.Drink{MixerIDs: []string{"tonic", "gone"}}

	got := MixersForDrink(cfg, d)
	require.Len(t, got, 1)
	assert.Equal(t, "Tonic", got[0].Name)
}

func TestDrinksForCategory(t *testing.T) {
	cfg := fixture()
	got := DrinksForCategory(cfg, "gin")
	require.Len(t, got, 2)
	assert.Equal(t, "bombay", got[0].ID)
	assert.Equal(t, "hendricks", got[1].ID)

	assert.Empty(t, DrinksForCategory(cfg, "vodka"))
}

func TestCategoriesForEvent(t *testing.T) {
	cfg := fixture()
	ev, _ := cfg.EventByID("party")

	got := CategoriesForEvent(cfg, ev)
	require.Len(t, got, 2)

	// Only categories with at least one offered drink appear.
	next, err := DeleteDrink(cfg, "havana")
	require.NoError(t, err)
	ev, _ = next.EventByID("party")
	got = CategoriesForEvent(next, ev)
	require.Len(t, got, 1)
	assert.Equal(t, "gin", got[0].ID)
}

func TestBookingsForEvent(t *testing.T) {
	cfg := fixture()
	got := BookingsForEvent(cfg, "party")
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}
