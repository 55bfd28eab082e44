package catalog

// DefaultSpeedKmh is the speed assumed for modes missing from the catalog.
// Unknown modes ride free: no fare rate is invented for them.
const DefaultSpeedKmh = 60

// DefaultProfiles returns the compiled-in transport modes, used when no
// database is configured or the catalog tables cannot be read.
func DefaultProfiles() []VehicleProfile {
	return []VehicleProfile{
		{Mode: "Car", SpeedKmh: 60, FarePerKm: 10},
		{Mode: "Motorcycle", SpeedKmh: 50, FarePerKm: 5},
		{Mode: "Bus", SpeedKmh: 40, FarePerKm: 2},
		{Mode: "Train", SpeedKmh: 60, FarePerKm: 1},
		{Mode: "Bike", SpeedKmh: 15, FarePerKm: 0},
		{Mode: "Walking", SpeedKmh: 5, FarePerKm: 0},
	}
}

// DefaultLanguages returns the compiled-in translation targets.
func DefaultLanguages() []Language {
	return []Language{
		{Name: "Hindi", Code: "hi"},
		{Name: "English", Code: "en"},
		{Name: "Telugu", Code: "te"},
		{Name: "Tamil", Code: "ta"},
		{Name: "Marathi", Code: "mr"},
		{Name: "Gujarati", Code: "gu"},
		{Name: "Kannada", Code: "kn"},
		{Name: "Malayalam", Code: "ml"},
		{Name: "Odia", Code: "or"},
		{Name: "Bengali", Code: "bn"},
		{Name: "Assamese", Code: "as"},
		{Name: "Punjabi", Code: "pa"},
		{Name: "Urdu", Code: "ur"},
	}
}
