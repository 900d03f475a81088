package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// PhoneRecord is one scraped phone, keyed for JSON export and batch
// insertion. Field order matches phoneColumns.
type PhoneRecord struct {
	URL                  string `json:"url"`
	Name                 string `json:"name"`
	ImageURL             string `json:"image_url"`
	LaunchAnnounced      string `json:"launch_announced"`
	LaunchStatus         string `json:"launch_status"`
	NetworkTechnology    string `json:"network_technology"`
	Network2GBands       string `json:"network_2g_bands"`
	Network3GBands       string `json:"network_3g_bands"`
	Network4GBands       string `json:"network_4g_bands"`
	Network5GBands       string `json:"network_5g_bands"`
	NetworkSpeed         string `json:"network_speed"`
	BodyDimensions       string `json:"body_dimensions"`
	BodyWeight           string `json:"body_weight"`
	BodyBuild            string `json:"body_build"`
	BodySIM              string `json:"body_sim"`
	DisplayType          string `json:"display_type"`
	DisplaySize          string `json:"display_size"`
	DisplayResolution    string `json:"display_resolution"`
	DisplayProtection    string `json:"display_protection"`
	PlatformOS           string `json:"platform_os"`
	PlatformChipset      string `json:"platform_chipset"`
	PlatformCPU          string `json:"platform_cpu"`
	PlatformGPU          string `json:"platform_gpu"`
	MemoryCardSlot       string `json:"memory_card_slot"`
	MemoryInternal       string `json:"memory_internal"`
	MainCamera           string `json:"main_camera"`
	MainCameraFeatures   string `json:"main_camera_features"`
	MainCameraVideo      string `json:"main_camera_video"`
	SelfieCamera         string `json:"selfie_camera"`
	SelfieCameraFeatures string `json:"selfie_camera_features"`
	SelfieCameraVideo    string `json:"selfie_camera_video"`
	SoundLoudspeaker     string `json:"sound_loudspeaker"`
	Sound35mmJack        string `json:"sound_3_5mm_jack"`
	CommsWLAN            string `json:"comms_wlan"`
	CommsBluetooth       string `json:"comms_bluetooth"`
	CommsPositioning     string `json:"comms_positioning"`
	CommsNFC             string `json:"comms_nfc"`
	CommsRadio           string `json:"comms_radio"`
	CommsUSB             string `json:"comms_usb"`
	FeaturesSensors      string `json:"features_sensors"`
	BatteryType          string `json:"battery_type"`
	BatteryCharging      string `json:"battery_charging"`
	MiscColors           string `json:"misc_colors"`
	MiscModels           string `json:"misc_models"`
	MiscSAR              string `json:"misc_sar"`
	MiscSAREU            string `json:"misc_sar_eu"`
	MiscPrice            string `json:"misc_price"`
}

var phoneColumns = []string{
	"url", "name", "image_url", "launch_announced", "launch_status",
	"network_technology", "network_2g_bands", "network_3g_bands",
	"network_4g_bands", "network_5g_bands", "network_speed",
	"body_dimensions", "body_weight", "body_build", "body_sim",
	"display_type", "display_size", "display_resolution", "display_protection",
	"platform_os", "platform_chipset", "platform_cpu", "platform_gpu",
	"memory_card_slot", "memory_internal",
	"main_camera", "main_camera_features", "main_camera_video",
	"selfie_camera", "selfie_camera_features", "selfie_camera_video",
	"sound_loudspeaker", "sound_3_5mm_jack",
	"comms_wlan", "comms_bluetooth", "comms_positioning",
	"comms_nfc", "comms_radio", "comms_usb",
	"features_sensors",
	"battery_type", "battery_charging",
	"misc_colors", "misc_models", "misc_sar", "misc_sar_eu", "misc_price",
}

// PhoneColumns returns the catalog column names in insertion order.
func PhoneColumns() []string {
	out := make([]string, len(phoneColumns))
	copy(out, phoneColumns)
	return out
}

// Fields returns the record's values in PhoneColumns order.
func (p *PhoneRecord) Fields() []string {
	vals := p.values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}

func (p *PhoneRecord) values() []any {
	return []any{
		p.URL, p.Name, p.ImageURL, p.LaunchAnnounced, p.LaunchStatus,
		p.NetworkTechnology, p.Network2GBands, p.Network3GBands,
		p.Network4GBands, p.Network5GBands, p.NetworkSpeed,
		p.BodyDimensions, p.BodyWeight, p.BodyBuild, p.BodySIM,
		p.DisplayType, p.DisplaySize, p.DisplayResolution, p.DisplayProtection,
		p.PlatformOS, p.PlatformChipset, p.PlatformCPU, p.PlatformGPU,
		p.MemoryCardSlot, p.MemoryInternal,
		p.MainCamera, p.MainCameraFeatures, p.MainCameraVideo,
		p.SelfieCamera, p.SelfieCameraFeatures, p.SelfieCameraVideo,
		p.SoundLoudspeaker, p.Sound35mmJack,
		p.CommsWLAN, p.CommsBluetooth, p.CommsPositioning,
		p.CommsNFC, p.CommsRadio, p.CommsUSB,
		p.FeaturesSensors,
		p.BatteryType, p.BatteryCharging,
		p.MiscColors, p.MiscModels, p.MiscSAR, p.MiscSAREU, p.MiscPrice,
	}
}

// UpsertBatch inserts phones in one multi-row statement, updating
// name/image/updated_at on url conflict.
func (s *Store) UpsertBatch(ctx context.Context, phones []PhoneRecord) error {
	if len(phones) == 0 {
		return nil
	}

	numCols := len(phoneColumns)
	var sb strings.Builder
	sb.WriteString("INSERT INTO samsung_phones (")
	sb.WriteString(strings.Join(phoneColumns, ", "))
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(phones)*numCols)
	for i, p := range phones {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < numCols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*numCols+j+1)
		}
		sb.WriteString(")")
		args = append(args, p.values()...)
	}
	sb.WriteString(` ON CONFLICT (url) DO UPDATE SET
		name = EXCLUDED.name,
		image_url = EXCLUDED.image_url,
		updated_at = CURRENT_TIMESTAMP`)

	if _, err := s.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("upsert phones: %w", err)
	}
	s.log.Info("phones upserted", zap.Int("count", len(phones)))
	return nil
}

// LoadJSON reads scraped phone records from a JSON file and upserts
// them, returning the number of records loaded.
func (s *Store) LoadJSON(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	var phones []PhoneRecord
	if err := json.Unmarshal(data, &phones); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	// Postgres caps prepared-statement parameters at 65535; chunk well
	// below that (47 columns per row).
	const chunkSize = 500
	for start := 0; start < len(phones); start += chunkSize {
		end := start + chunkSize
		if end > len(phones) {
			end = len(phones)
		}
		if err := s.UpsertBatch(ctx, phones[start:end]); err != nil {
			return 0, err
		}
	}
	return len(phones), nil
}
