package store

import (
	"context"
	"fmt"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS samsung_phones (
	id SERIAL PRIMARY KEY,
	url TEXT UNIQUE,
	name VARCHAR(255),
	image_url TEXT,
	launch_announced VARCHAR(100),
	launch_status VARCHAR(100),
	network_technology TEXT,
	network_2g_bands TEXT,
	network_3g_bands TEXT,
	network_4g_bands TEXT,
	network_5g_bands TEXT,
	network_speed VARCHAR(100),
	body_dimensions VARCHAR(100),
	body_weight VARCHAR(100),
	body_build TEXT,
	body_sim TEXT,
	display_type TEXT,
	display_size VARCHAR(100),
	display_resolution VARCHAR(100),
	display_protection TEXT,
	platform_os TEXT,
	platform_chipset TEXT,
	platform_cpu TEXT,
	platform_gpu TEXT,
	memory_card_slot TEXT,
	memory_internal TEXT,
	main_camera TEXT,
	main_camera_features TEXT,
	main_camera_video TEXT,
	selfie_camera TEXT,
	selfie_camera_features TEXT,
	selfie_camera_video TEXT,
	sound_loudspeaker VARCHAR(50),
	sound_3_5mm_jack VARCHAR(50),
	comms_wlan TEXT,
	comms_bluetooth TEXT,
	comms_positioning TEXT,
	comms_nfc VARCHAR(50),
	comms_radio VARCHAR(50),
	comms_usb TEXT,
	features_sensors TEXT,
	battery_type TEXT,
	battery_charging TEXT,
	misc_colors TEXT,
	misc_models TEXT,
	misc_sar VARCHAR(100),
	misc_sar_eu VARCHAR(100),
	misc_price TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_phone_name ON samsung_phones(name);
CREATE INDEX IF NOT EXISTS idx_launch_announced ON samsung_phones(launch_announced);
`

// EnsureSchema creates the samsung_phones table and its indexes if they
// do not already exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	s.log.Info("catalog schema verified")
	return nil
}
