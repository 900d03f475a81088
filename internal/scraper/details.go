package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

// ScrapeDetails fetches one phone page and maps its specification
// tables into a PhoneRecord.
func (s *Scraper) ScrapeDetails(ctx context.Context, phoneURL string) (*store.PhoneRecord, error) {
	doc, err := s.fetch(ctx, phoneURL)
	if err != nil {
		return nil, err
	}
	rec := parsePhonePage(doc, phoneURL)
	return rec, nil
}

// parsePhonePage extracts name, image, and all spec rows from a parsed
// phone page. Split from ScrapeDetails so tests can feed fixture HTML.
func parsePhonePage(doc *goquery.Document, phoneURL string) *store.PhoneRecord {
	rec := &store.PhoneRecord{URL: phoneURL}

	rec.Name = trim(doc.Find("h1.specs-phone-name-title").First().Text())
	if src, ok := doc.Find("div.specs-photo-main img").First().Attr("src"); ok {
		rec.ImageURL = src
	}

	// Spec tables label rows with td.ttl/td.nfo pairs; a th[scope=row]
	// names the section, spanning its row and the following ones. The
	// th row usually carries the section's first spec pair as well.
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		section := ""
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if th := row.Find(`th[scope="row"]`); th.Length() > 0 {
				section = strings.ToLower(trim(th.Text()))
			}
			name := strings.ToLower(trim(row.Find("td.ttl").Text()))
			value := trim(row.Find("td.nfo").Text())
			if name == "" || value == "" {
				return
			}
			mapSpec(rec, section, name, value)
		})
	})

	return rec
}

type fieldRule struct {
	key string
	set func(*store.PhoneRecord, string)
}

// fieldRules maps spec labels to record fields by substring match, in
// order; "positioning" must precede "os" and "sar eu" must precede
// "sar".
var fieldRules = []fieldRule{
	{"technology", func(p *store.PhoneRecord, v string) { p.NetworkTechnology = v }},
	{"2g bands", func(p *store.PhoneRecord, v string) { p.Network2GBands = v }},
	{"3g bands", func(p *store.PhoneRecord, v string) { p.Network3GBands = v }},
	{"4g bands", func(p *store.PhoneRecord, v string) { p.Network4GBands = v }},
	{"5g bands", func(p *store.PhoneRecord, v string) { p.Network5GBands = v }},
	{"speed", func(p *store.PhoneRecord, v string) { p.NetworkSpeed = v }},
	{"announced", func(p *store.PhoneRecord, v string) { p.LaunchAnnounced = v }},
	{"status", func(p *store.PhoneRecord, v string) { p.LaunchStatus = v }},
	{"dimensions", func(p *store.PhoneRecord, v string) { p.BodyDimensions = v }},
	{"weight", func(p *store.PhoneRecord, v string) { p.BodyWeight = v }},
	{"build", func(p *store.PhoneRecord, v string) { p.BodyBuild = v }},
	{"sim", func(p *store.PhoneRecord, v string) { p.BodySIM = v }},
	{"size", func(p *store.PhoneRecord, v string) { p.DisplaySize = v }},
	{"resolution", func(p *store.PhoneRecord, v string) { p.DisplayResolution = v }},
	{"protection", func(p *store.PhoneRecord, v string) { p.DisplayProtection = v }},
	{"positioning", func(p *store.PhoneRecord, v string) { p.CommsPositioning = v }},
	{"os", func(p *store.PhoneRecord, v string) { p.PlatformOS = v }},
	{"chipset", func(p *store.PhoneRecord, v string) { p.PlatformChipset = v }},
	{"cpu", func(p *store.PhoneRecord, v string) { p.PlatformCPU = v }},
	{"gpu", func(p *store.PhoneRecord, v string) { p.PlatformGPU = v }},
	{"card slot", func(p *store.PhoneRecord, v string) { p.MemoryCardSlot = v }},
	{"internal", func(p *store.PhoneRecord, v string) { p.MemoryInternal = v }},
	{"loudspeaker", func(p *store.PhoneRecord, v string) { p.SoundLoudspeaker = v }},
	{"3.5mm jack", func(p *store.PhoneRecord, v string) { p.Sound35mmJack = v }},
	{"wlan", func(p *store.PhoneRecord, v string) { p.CommsWLAN = v }},
	{"bluetooth", func(p *store.PhoneRecord, v string) { p.CommsBluetooth = v }},
	{"nfc", func(p *store.PhoneRecord, v string) { p.CommsNFC = v }},
	{"radio", func(p *store.PhoneRecord, v string) { p.CommsRadio = v }},
	{"usb", func(p *store.PhoneRecord, v string) { p.CommsUSB = v }},
	{"sensors", func(p *store.PhoneRecord, v string) { p.FeaturesSensors = v }},
	{"charging", func(p *store.PhoneRecord, v string) { p.BatteryCharging = v }},
	{"colors", func(p *store.PhoneRecord, v string) { p.MiscColors = v }},
	{"models", func(p *store.PhoneRecord, v string) { p.MiscModels = v }},
	{"sar eu", func(p *store.PhoneRecord, v string) { p.MiscSAREU = v }},
	{"sar", func(p *store.PhoneRecord, v string) { p.MiscSAR = v }},
	{"price", func(p *store.PhoneRecord, v string) { p.MiscPrice = v }},
}

var cameraCounts = map[string]bool{
	"single": true, "dual": true, "triple": true,
	"quad": true, "penta": true, "hexa": true,
}

// mapSpec routes one (section, label, value) triple into the record.
// A few labels are ambiguous and resolved by section before the
// substring rules apply.
func mapSpec(rec *store.PhoneRecord, section, name, value string) {
	switch {
	case strings.Contains(name, "type"):
		switch section {
		case "display":
			rec.DisplayType = value
		case "battery":
			rec.BatteryType = value
		}
	case cameraCounts[name]:
		if strings.Contains(section, "selfie") {
			rec.SelfieCamera = value
		} else {
			rec.MainCamera = value
		}
	case strings.Contains(name, "features") && strings.Contains(section, "camera"):
		if strings.Contains(section, "selfie") {
			rec.SelfieCameraFeatures = value
		} else {
			rec.MainCameraFeatures = value
		}
	case strings.Contains(name, "video") && strings.Contains(section, "camera"):
		if strings.Contains(section, "selfie") {
			rec.SelfieCameraVideo = value
		} else {
			rec.MainCameraVideo = value
		}
	default:
		for _, rule := range fieldRules {
			if strings.Contains(name, rule.key) {
				rule.set(rec, value)
				return
			}
		}
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
