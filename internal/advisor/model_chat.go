package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/greenspot/internal/lighting"
	"github.com/alexanderramin/greenspot/internal/llm"
)

const expertSystemPrompt = `You are a friendly houseplant care expert. Answer in at most four sentences.
Give practical advice about watering, light, humidity, pests and repotting.
If the question is not about plants, steer the conversation back to plant care.`

// ModelChat answers with a language model and falls back to Fallback when
// the model is unavailable, times out or returns nothing.
type ModelChat struct {
	Client   llm.Client
	Fallback Chatter
}

func (m ModelChat) Chat(ctx context.Context, message string, pc *PlantContext) (string, error) {
	req := llm.ChatRequest{
		Task:    llm.TaskExpertChat,
		System:  expertSystemPrompt,
		Message: message,
	}
	if pc != nil && pc.Plant != nil {
		req.Task = llm.TaskPlantChat
		req.System = plantSystemPrompt(pc)
	}

	resp, err := m.Client.Chat(ctx, req)
	if err == nil {
		if text := strings.TrimSpace(resp.Text); text != "" {
			return text, nil
		}
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return m.Fallback.Chat(ctx, message, pc)
}

// plantSystemPrompt describes the plant from its stored data so the model
// speaks as that plant.
func plantSystemPrompt(pc *PlantContext) string {
	p := pc.Plant
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a houseplant", p.Name)
	if p.ScientificName != "" {
		fmt.Fprintf(&b, " (%s)", p.ScientificName)
	}
	b.WriteString(", talking to the person who cares for you. Reply in first person, warmly, in at most three sentences.\n")
	fmt.Fprintf(&b, "You need %s light. Your care: %s.\n", lighting.Describe(p.LightRequirement), p.Care.WateringFrequency)
	if pc.Spot != nil {
		fmt.Fprintf(&b, "You live in %s, which gets %s light.\n", pc.Spot.Name, lighting.Describe(pc.Spot.LightLevel))
		if lighting.Mismatch(p, pc.Spot) && !p.LightMismatchOverride {
			b.WriteString("The light there does not suit you.\n")
		}
	} else {
		b.WriteString("You have not been given a spot yet.\n")
	}
	fmt.Fprintf(&b, "Your current status is %s.", p.Status)
	return b.String()
}
