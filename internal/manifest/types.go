package manifest

// FileName is the fixed manifest filename inside an extension directory
// or archive.
const FileName = "package.json"

// Manifest is the parsed form of package.json. It is consumed once to
// populate an extension record and is not retained afterwards.
type Manifest struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Version     string       `json:"version,omitempty"`
	Contributes *Contributes `json:"contributes,omitempty"`
}

// Contributes groups the optional contribution lists. Unknown contribution
// kinds are ignored for forward compatibility.
type Contributes struct {
	Themes   []Contribution `json:"themes,omitempty"`
	Palettes []Contribution `json:"palettes,omitempty"`
}

// Contribution maps a logical resource id to a file path relative to the
// extension root.
type Contribution struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}
