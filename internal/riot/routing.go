package riot

import (
	"strings"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

var regionZones = map[string]string{
	"eun1": ZoneEurope,
	"euw1": ZoneEurope,
	"tr1":  ZoneEurope,
	"ru":   ZoneEurope,
	"na1":  ZoneAmericas,
	"br1":  ZoneAmericas,
	"la1":  ZoneAmericas,
	"la2":  ZoneAmericas,
	"kr":   ZoneAsia,
	"jp1":  ZoneAsia,
	"oc1":  ZoneAsia,
	"ph2":  ZoneAsia,
	"sg2":  ZoneAsia,
	"th2":  ZoneAsia,
	"tw2":  ZoneAsia,
	"vn2":  ZoneAsia,
}

// RoutingZone maps a platform region to its regional routing value.
// Unknown regions route to europe.
func RoutingZone(region string) string {
	if zone, ok := regionZones[strings.ToLower(strings.TrimSpace(region))]; ok {
		return zone
	}
	return ZoneEurope
}

// SplitRiotID splits "Name#Tag" into its two parts
func SplitRiotID(riotID string) (name, tag string, err error) {
	parts := strings.Split(riotID, "#")
	if len(parts) != 2 {
		return "", "", domain.ErrInvalidRiotID
	}
	name, tag = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if name == "" || tag == "" {
		return "", "", domain.ErrInvalidRiotID
	}
	return name, tag, nil
}
