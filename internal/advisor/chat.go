package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
	"github.com/alexanderramin/greenspot/internal/lighting"
)

// PlantContext lets the chat answer in a specific plant's voice.
type PlantContext struct {
	Plant *domain.Plant
	Spot  *domain.Spot
}

type Chatter interface {
	Chat(ctx context.Context, message string, pc *PlantContext) (string, error)
}

// Greeting opens an expert conversation.
const Greeting = "Hi! I'm your plant expert. Ask me anything about plant care, and I'll do my best to help keep your plants healthy and thriving!"

type rule struct {
	keywords []string
	reply    string
}

var expertRules = []rule{
	{[]string{"water"}, "Great question! Watering frequency depends on your plant and its location. Most houseplants prefer to dry out slightly between waterings. Stick your finger about 2 inches into the soil - if it feels dry, it's time to water. Plants in brighter spots typically need more frequent watering."},
	{[]string{"light", "dark", "sun"}, "Light is crucial for plant health! If your plant's leaves are small, pale, or it's growing slowly, it might need more light. Try moving it closer to a window. Most common houseplants do well in bright, indirect light."},
	{[]string{"yellow"}, "Yellow leaves can indicate several things: overwatering (most common), underwatering, or insufficient light. Check the soil moisture and your watering schedule. If the soil is constantly wet, reduce watering. If it's bone dry, increase frequency."},
	{[]string{"leaves", "leaf"}, "Leaf issues can have many causes. Brown tips often mean low humidity or mineral buildup from tap water. Yellowing can indicate overwatering. Drooping suggests underwatering. Can you describe what you're seeing in more detail?"},
}

const expertDefault = "I'm here to help with your plant care questions! Feel free to ask about watering, light requirements, common problems, or anything else plant-related. The more specific you are, the better I can assist you."

// KeywordChat answers from fixed keyword tables. With a PlantContext it
// replies as the plant, using its stored care data.
type KeywordChat struct{}

func (KeywordChat) Chat(ctx context.Context, message string, pc *PlantContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lower := strings.ToLower(message)
	if pc != nil && pc.Plant != nil {
		return plantReply(lower, pc), nil
	}
	for _, r := range expertRules {
		if containsAny(lower, r.keywords) {
			return r.reply, nil
		}
	}
	return expertDefault, nil
}

func plantReply(lower string, pc *PlantContext) string {
	p := pc.Plant
	switch {
	case containsAny(lower, []string{"how are you", "how do you feel"}):
		return feeling(p)
	case containsAny(lower, []string{"water", "thirsty"}):
		return fmt.Sprintf("Thanks for checking! 💧 %s suits me. I'll let you know when I start feeling thirsty!", p.Care.WateringFrequency)
	case containsAny(lower, []string{"light", "sun"}):
		return lightReply(pc)
	case containsAny(lower, []string{"temperature", "temp", "hot", "cold"}):
		return "I prefer temperatures between 18-26°C. Keep me away from cold drafts and radiators and I'm in my comfort zone! 🌡️"
	case containsAny(lower, []string{"sick", "disease", "problem"}):
		if p.Status == domain.StatusNeedsAttention {
			return "I'm not at my best right now. Could you take a closer look at my leaves and soil? 🍂"
		}
		return "No signs of disease or stress that I know of! 💚 If you ever notice anything unusual, turn on a pest check task for me."
	case containsAny(lower, []string{"grow", "bigger"}):
		return "I'm growing steadily! 🌱 Keep up the great care, and I'll reward you with new leaves!"
	case containsAny(lower, []string{"thank", "love"}):
		return "Aww, you're the best! 💚 I love being your plant companion. Together, we make a great team! 🌿"
	case containsAny(lower, []string{"help", "what can"}):
		return "I can tell you about my water needs, light, temperature preferences, and overall health! Just ask me things like 'How are you feeling?' or 'Do you need water?' 🌱"
	}
	return "That's interesting! 🌿 I'm here to help you understand my needs. You can ask me about my water, light, temperature, or overall health. What would you like to know?"
}

func feeling(p *domain.Plant) string {
	switch p.Status {
	case domain.StatusNeedsWater:
		return "I'm a little thirsty! 💧 A drink would perk me right up."
	case domain.StatusCheckLight:
		return "I'm doing okay, but the light here isn't quite what I like. ☀️"
	case domain.StatusNeedsAttention:
		return "I could use some attention. Something doesn't feel right. 🍂"
	}
	return fmt.Sprintf("I'm feeling wonderful! 🌿 %s is everything I need. I'm thriving!", p.Name)
}

func lightReply(pc *PlantContext) string {
	want := lighting.Describe(pc.Plant.LightRequirement)
	if pc.Spot == nil {
		return fmt.Sprintf("I love %s light! ☀️ Find me a spot that has it.", want)
	}
	if lighting.Mismatch(pc.Plant, pc.Spot) && !pc.Plant.LightMismatchOverride {
		return fmt.Sprintf("I'd really prefer %s light, but %s gets %s light. Could we try somewhere else? ☀️",
			want, pc.Spot.Name, lighting.Describe(pc.Spot.LightLevel))
	}
	return fmt.Sprintf("The light in %s is just right for me! ☀️ Keep me here!", pc.Spot.Name)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
