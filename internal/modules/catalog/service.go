// README: Catalog service resolves vehicle profiles and language codes.
package catalog

// Service holds the catalog loaded once at startup. It is immutable after
// construction, so concurrent reads need no locking.
type Service struct {
	profiles  []VehicleProfile
	languages []Language
	byMode    map[string]VehicleProfile
	byName    map[string]string
}

func NewService(profiles []VehicleProfile, languages []Language) *Service {
	s := &Service{
		profiles:  profiles,
		languages: languages,
		byMode:    make(map[string]VehicleProfile, len(profiles)),
		byName:    make(map[string]string, len(languages)),
	}
	for _, p := range profiles {
		s.byMode[p.Mode] = p
	}
	for _, l := range languages {
		s.byName[l.Name] = l.Code
	}
	return s
}

// NewDefaultService builds a Service from the compiled-in catalog.
func NewDefaultService() *Service {
	return NewService(DefaultProfiles(), DefaultLanguages())
}

// ProfileFor returns the profile for a mode. Unknown modes fall back to the
// default speed with a zero fare rate.
func (s *Service) ProfileFor(mode string) VehicleProfile {
	if p, ok := s.byMode[mode]; ok {
		return p
	}
	return VehicleProfile{Mode: mode, SpeedKmh: DefaultSpeedKmh, FarePerKm: 0}
}

// CodeFor resolves a language display name to its two-letter code.
func (s *Service) CodeFor(name string) (string, bool) {
	code, ok := s.byName[name]
	return code, ok
}

func (s *Service) Profiles() []VehicleProfile {
	return s.profiles
}

func (s *Service) Languages() []Language {
	return s.languages
}
