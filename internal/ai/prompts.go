package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/cityfix_backend/internal/models"
)

const systemCivic = "You are an assistant for CityFix, a civic complaint platform. " +
	"You inspect photos and descriptions of city infrastructure problems reported by residents."

func categoryNames() []string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return names
}

var classifySchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"category":   {Type: TypeString, Enum: categoryNames()},
		"confidence": {Type: TypeNumber, Description: "0.0 to 1.0"},
	},
	Required: []string{"category", "confidence"},
}

func classifyPrompt(description string) string {
	return fmt.Sprintf("Classify this civic complaint into one of the categories: %s.\n"+
		"Use both the image and the provided description. "+
		"Return category and confidence between 0.0 and 1.0.\n"+
		"Description: %s", strings.Join(categoryNames(), ", "), description)
}

var severitySchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"severity": {Type: TypeString, Enum: []string{"High", "Medium", "Low"}},
		"reason":   {Type: TypeString},
	},
	Required: []string{"severity", "reason"},
}

func severityPrompt(description string, category models.Category) string {
	cat := string(category)
	if cat == "" {
		cat = "Unknown"
	}
	return fmt.Sprintf("Analyze this civic issue and assign a severity rating of High, Medium, or Low. "+
		"Also provide a short reason.\nCategory: %s\nDescription: %s", cat, description)
}

var similaritySchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"similarity": {Type: TypeNumber, Description: "0.0 to 1.0"},
	},
	Required: []string{"similarity"},
}

const similarityPrompt = "Compare these two images and rate between 0.0 and 1.0 " +
	"how likely they depict the same civic issue at the same place."

var verificationSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"status": {Type: TypeString, Enum: []string{
			models.ResolutionResolved, models.ResolutionPartiallyResolved, models.ResolutionNotResolved,
		}},
		"confidence":  {Type: TypeNumber, Description: "0.0 to 1.0"},
		"explanation": {Type: TypeString},
	},
	Required: []string{"status", "confidence", "explanation"},
}

func verificationPrompt(category models.Category) string {
	return fmt.Sprintf("The first image shows a %s civic issue as reported, the second image was taken after repair work. "+
		"Determine whether the issue has been resolved, give a confidence between 0.0 and 1.0 and a brief explanation.", category)
}

var bulletsSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"bullets": {Type: TypeArray, Items: &Schema{Type: TypeString}},
	},
	Required: []string{"bullets"},
}

type complaintSample struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Address  string `json:"address,omitempty"`
}

func bulletsPrompt(stats models.ComplaintStats, samples []*models.Complaint) string {
	if len(samples) > 50 {
		samples = samples[:50]
	}
	compact := make([]complaintSample, 0, len(samples))
	for _, c := range samples {
		s := complaintSample{Category: string(c.Category), Priority: string(c.Priority), Status: string(c.Status)}
		if c.Location != nil {
			s.Address = c.Location.Address
		}
		compact = append(compact, s)
	}
	statsJSON, _ := json.Marshal(stats)
	samplesJSON, _ := json.Marshal(compact)
	return fmt.Sprintf("Summarize civic complaints this week in exactly 3 concise bullet points including: "+
		"total new complaints, most frequent issue types, areas with high activity, %% resolved vs pending, and notable trends.\n\n"+
		"Stats: %s\n\nSamples: %s", statsJSON, samplesJSON)
}

var actionPlanSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"steps":          {Type: TypeArray, Items: &Schema{Type: TypeString}},
		"crew":           {Type: TypeString},
		"estimatedHours": {Type: TypeNumber},
	},
	Required: []string{"steps", "crew", "estimatedHours"},
}

func actionPlanPrompt(c *models.Complaint) string {
	address := ""
	if c.Location != nil {
		address = c.Location.Address
	}
	return fmt.Sprintf("Propose a short action plan for a municipal crew to fix this issue. "+
		"List concrete steps, the crew type required and estimated work hours.\n"+
		"Category: %s\nPriority: %s\nAddress: %s\nDescription: %s",
		c.Category, c.Priority, address, c.Description)
}

var summarySchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"summary": {Type: TypeString},
	},
	Required: []string{"summary"},
}

func summaryPrompt(description string, category models.Category) string {
	return fmt.Sprintf("Write a concise one-sentence summary of this civic complaint for a city dispatcher.\n"+
		"Category: %s\nDescription: %s", category, description)
}

var chatSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"response": {Type: TypeString},
	},
	Required: []string{"response"},
}

func chatPrompt(query, contextData string) string {
	if contextData == "" {
		contextData = "none"
	}
	return fmt.Sprintf("Answer a resident's question about the platform or their complaints. "+
		"Provide a clear, concise and helpful response. "+
		"If asked about complaint status, format it nicely with relevant details.\n"+
		"User query: %s\nContext: %s", query, contextData)
}
