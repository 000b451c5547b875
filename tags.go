package osm2ch

import "github.com/paulmach/osm"

// AccessType is an OSM access-control tag key, checked against
// accessDeniedValues to decide whether a way is closed to routing.
type AccessType uint16

const (
	ACCESS_MOTOR_VEHICLE = AccessType(iota + 1)
	ACCESS_MOTORCAR
	ACCESS_OSM_ACCESS
	ACCESS_SERVICE
	ACCESS_BICYCLE
	ACCESS_FOOT
)

func (iotaIdx AccessType) String() string {
	return [...]string{"motor_vehicle", "motorcar", "access", "service", "bicycle", "foot"}[iotaIdx-1]
}

// accessDeniedValues are the tag values that close a way to the relevant
// mode of travel. See ref.: https://wiki.openstreetmap.org/wiki/Key:access
var accessDeniedValues = map[string]struct{}{
	"no":           {},
	"private":      {},
	"agricultural": {},
	"forestry":     {},
	"delivery":     {},
}

// accessKeysByLink lists, in priority order (most specific first, per OSM
// convention), the access tag keys relevant to a LinkType. A way is denied
// if the first of them present carries a value in accessDeniedValues.
var accessKeysByLink = map[LinkType][]AccessType{
	LINK_FOOTWAY:  {ACCESS_FOOT, ACCESS_OSM_ACCESS},
	LINK_CYCLEWAY: {ACCESS_BICYCLE, ACCESS_OSM_ACCESS},
	LINK_SERVICE:  {ACCESS_SERVICE, ACCESS_MOTOR_VEHICLE, ACCESS_MOTORCAR, ACCESS_OSM_ACCESS},
	LINK_TRACK:    {ACCESS_MOTOR_VEHICLE, ACCESS_MOTORCAR, ACCESS_OSM_ACCESS},
}

// defaultAccessKeys is used for every LinkType not named in
// accessKeysByLink: ordinary vehicular roads.
var defaultAccessKeys = []AccessType{ACCESS_MOTOR_VEHICLE, ACCESS_MOTORCAR, ACCESS_OSM_ACCESS}

// isAccessDenied reports whether tags closes a way of the given LinkType to
// routing, checking the mode-appropriate access keys in priority order and
// stopping at the first one present (a more specific key like motor_vehicle
// overrides the general access tag).
func isAccessDenied(tags osm.Tags, lt LinkType) bool {
	keys, ok := accessKeysByLink[lt]
	if !ok {
		keys = defaultAccessKeys
	}
	for _, key := range keys {
		value := tags.Find(key.String())
		if value == "" {
			continue
		}
		_, denied := accessDeniedValues[value]
		return denied
	}
	return false
}

var (
	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	poiHighwayTags = map[string]struct{}{
		"bus_stop": {},
		"platform": {},
	}

	negligibleHighwayTags = map[string]struct{}{
		"path":         {},
		"construction": {},
		"proposed":     {},
		"raceway":      {},
		"bridleway":    {},
		"rest_area":    {},
		"road":         {},
		"abandoned":    {},
		"planned":      {},
		"trailhead":    {},
		"stairs":       {},
		"dismantled":   {},
		"disused":      {},
		"razed":        {},
		"access":       {},
		"corridor":     {},
		"stop":         {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}
)
