package advisor

import (
	"context"
	"testing"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	assert.Len(t, Search(""), 7)

	byName := Search("lily")
	require.Len(t, byName, 1)
	assert.Equal(t, "Peace Lily", byName[0].Name)

	byLatin := Search("FICUS")
	require.Len(t, byLatin, 1)
	assert.Equal(t, domain.LightBrightIndirect, byLatin[0].LightRequirement)

	plants := Search("plant")
	assert.Len(t, plants, 3, "snake, zz and spider plant")

	assert.Empty(t, Search("orchid"))
}

func TestCatalogReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Name = "changed"
	assert.Equal(t, "Golden Pothos", Catalog()[0].Name)
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("zz-plant")
	require.True(t, ok)
	assert.Equal(t, "ZZ Plant", s.Name)

	s, ok = Lookup("snake plant")
	require.True(t, ok)
	assert.Equal(t, domain.LightLow, s.LightRequirement)

	_, ok = Lookup("cactus")
	assert.False(t, ok)
}

func TestStaticIdentifier_Deterministic(t *testing.T) {
	ctx := context.Background()
	img := []byte("fake jpeg bytes")

	first, err := StaticIdentifier{}.Identify(ctx, img)
	require.NoError(t, err)
	second, err := StaticIdentifier{}.Identify(ctx, img)
	require.NoError(t, err)

	assert.Equal(t, first.Species, second.Species)
	assert.GreaterOrEqual(t, first.Confidence, 0.80)
	assert.Less(t, first.Confidence, 1.0)
}

func TestStaticIdentifier_EmptyImage(t *testing.T) {
	_, err := StaticIdentifier{}.Identify(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaticIdentifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := StaticIdentifier{}.Identify(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeywordChat_Expert(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		message string
		prefix  string
	}{
		{"How often should I WATER?", "Great question! Watering"},
		{"my room is dark", "Light is crucial"},
		{"yellow spots everywhere", "Yellow leaves"},
		{"brown leaf tips", "Leaf issues"},
		{"hello", "I'm here to help"},
	}
	for _, tc := range cases {
		reply, err := KeywordChat{}.Chat(ctx, tc.message, nil)
		require.NoError(t, err)
		assert.Contains(t, reply, tc.prefix, "message=%q", tc.message)
	}
}

func TestKeywordChat_WaterBeatsLight(t *testing.T) {
	reply, err := KeywordChat{}.Chat(context.Background(), "water in the sun?", nil)
	require.NoError(t, err)
	assert.Contains(t, reply, "Watering frequency")
}

func TestKeywordChat_PlantVoice(t *testing.T) {
	ctx := context.Background()
	plant := &domain.Plant{
		Name:             "Monstera",
		Status:           domain.StatusCheckLight,
		LightRequirement: domain.LightBrightIndirect,
		Care:             domain.CareInstructions{WateringFrequency: "Water every 5–7 days"},
	}
	spot := &domain.Spot{Name: "Sunny sill", LightLevel: domain.LightBrightDirect}
	pc := &PlantContext{Plant: plant, Spot: spot}

	reply, err := KeywordChat{}.Chat(ctx, "Are you thirsty?", pc)
	require.NoError(t, err)
	assert.Contains(t, reply, "Water every 5–7 days")

	reply, err = KeywordChat{}.Chat(ctx, "how's the sun?", pc)
	require.NoError(t, err)
	assert.Contains(t, reply, "bright indirect light")
	assert.Contains(t, reply, "Sunny sill gets bright direct light")

	plant.LightMismatchOverride = true
	reply, err = KeywordChat{}.Chat(ctx, "light ok?", pc)
	require.NoError(t, err)
	assert.Contains(t, reply, "just right")

	reply, err = KeywordChat{}.Chat(ctx, "how are you", pc)
	require.NoError(t, err)
	assert.Contains(t, reply, "light here")

	reply, err = KeywordChat{}.Chat(ctx, "tell me a joke", pc)
	require.NoError(t, err)
	assert.Contains(t, reply, "That's interesting!")
}
