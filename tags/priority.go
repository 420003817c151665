// File: tags/priority.go

package tags

// Source priorities for name-based tag resolution. Higher wins.
// Main EXIF tags override GPS, which overrides maker note tags with the
// same name; namespaces outside the table rank lowest.
const (
	PriorityExif       = 100
	PriorityGPS        = 80
	PriorityMakerNotes = 50
	PriorityUnknown    = 10
)

// makerNamespaces lists manufacturer namespaces that rank at maker
// note priority. Populated once; never mutated after init.
var makerNamespaces = map[string]bool{
	"Apple":      true,
	"Canon":      true,
	"Casio":      true,
	"DJI":        true,
	"Fujifilm":   true,
	"GoPro":      true,
	"Hasselblad": true,
	"Kodak":      true,
	"Leica":      true,
	"MakerNotes": true,
	"Minolta":    true,
	"Nikon":      true,
	"Olympus":    true,
	"Panasonic":  true,
	"Pentax":     true,
	"Ricoh":      true,
	"Samsung":    true,
	"Sigma":      true,
	"Sony":       true,
}

// Priority returns the resolution rank for a namespace
func Priority(namespace string) int {
	switch namespace {
	case "EXIF", "IFD0", "IFD1", "ExifIFD", "SubIFD":
		return PriorityExif
	case "GPS":
		return PriorityGPS
	}
	if makerNamespaces[namespace] {
		return PriorityMakerNotes
	}
	return PriorityUnknown
}
