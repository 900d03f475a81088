// Package registry holds the static prompt context for SQL synthesis:
// the catalog schema description and the few-shot (question, SQL)
// example pairs. Both are loaded once at startup and shared read-only.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// SchemaText describes the samsung_phones columns for the SQL prompt.
const SchemaText = `Table: samsung_phones

Columns:
- id: integer (primary key)
- name: varchar (phone model name)
- url: text (product page URL)
- image_url: text (phone image URL)
- launch_announced: varchar (announcement date)
- launch_status: varchar (availability status)
- network_technology: text (network types)
- network_5g_bands: text (5G band support)
- network_4g_bands: text (4G/LTE bands)
- body_dimensions: varchar (physical dimensions)
- body_weight: varchar (weight in grams)
- display_type: text (screen technology)
- display_size: varchar (screen size in inches)
- display_resolution: varchar (screen resolution)
- platform_os: text (operating system)
- platform_chipset: text (processor chipset)
- platform_cpu: text (CPU details)
- platform_gpu: text (GPU details)
- memory_internal: text (storage options)
- main_camera: text (rear camera specs)
- main_camera_features: text (camera features)
- main_camera_video: text (video recording capabilities)
- selfie_camera: text (front camera specs)
- battery_type: text (battery capacity)
- battery_charging: text (charging capabilities)
- misc_price: text (price information)
- misc_colors: text (available colors)`

// Example is one worked (question, SQL) pair used for few-shot
// prompting. JSON tags match the few_shot.json file layout.
type Example struct {
	Question string `json:"user_question"`
	SQL      string `json:"sql_schema"`
}

// defaultExamples are used when no few-shot file is present.
var defaultExamples = []Example{
	{
		Question: "Which phones have 5G?",
		SQL:      "SELECT name, network_5g_bands FROM samsung_phones WHERE network_5g_bands != '' AND network_5g_bands IS NOT NULL LIMIT 5",
	},
	{
		Question: "Compare Galaxy S25 and S24 cameras",
		SQL:      "SELECT name, main_camera, selfie_camera, main_camera_features FROM samsung_phones WHERE name ILIKE '%Galaxy S25%' OR name ILIKE '%Galaxy S24%'",
	},
}

// LoadExamples reads few-shot examples from path, falling back to the
// built-in defaults when the file is absent or unreadable.
func LoadExamples(path string, log *zap.Logger) []Example {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Info("few-shot file not found, using built-in examples",
			zap.String("path", path))
		return defaultExamples
	}

	var examples []Example
	if err := json.Unmarshal(data, &examples); err != nil {
		log.Warn("few-shot file invalid, using built-in examples",
			zap.String("path", path), zap.Error(err))
		return defaultExamples
	}
	if len(examples) == 0 {
		return defaultExamples
	}
	log.Info("loaded few-shot examples",
		zap.String("path", path), zap.Int("count", len(examples)))
	return examples
}

// RenderExamples formats examples as prompt text, one
// "Question: ...\nSQL: ..." pair per blank-line-separated block.
func RenderExamples(examples []Example) string {
	if len(examples) == 0 {
		return "No examples available."
	}
	blocks := make([]string, len(examples))
	for i, ex := range examples {
		blocks[i] = fmt.Sprintf("Question: %s\nSQL: %s", ex.Question, ex.SQL)
	}
	return strings.Join(blocks, "\n\n")
}
