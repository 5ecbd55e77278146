package scheduling

import (
	"fmt"
	"time"
)

// ZoneResolver turns an IANA zone name into a *time.Location. Injected so
// tests can substitute deterministic zones; the production resolver reads
// the system tz database.
type ZoneResolver interface {
	Resolve(name string) (*time.Location, error)
}

type systemZoneResolver struct{}

func (systemZoneResolver) Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("empty timezone name")
	}
	return time.LoadLocation(name)
}

// SystemZones returns the tz-database-backed resolver used in production.
func SystemZones() ZoneResolver {
	return systemZoneResolver{}
}
