package config

const VERSION = "1.1.0"

// Config holds global application settings
type Config struct {
	Debug   bool
	Quiet   bool
	Version string
	Output  string // text, json or yaml

	// Environment variable names
	ApidVar      string // ALPS application id
	NodeCountVar string // PBS fallback node count
	WidthVar     string // PBS fallback PE count
	NodeFileVar  string // PBS fallback node file path
}

// Global holds the singleton configuration instance
var Global Config

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// OutputFormats lists the accepted --output values
func OutputFormats() []string {
	return []string{OutputText, OutputJSON, OutputYAML}
}

// IsValidOutput reports whether format is an accepted output format
func IsValidOutput(format string) bool {
	for _, f := range OutputFormats() {
		if f == format {
			return true
		}
	}
	return false
}

func LoadDefaults() {
	Global = Config{
		Debug:   false,
		Quiet:   false,
		Version: VERSION,
		Output:  OutputText,

		ApidVar:      "ALPS_APP_ID",
		NodeCountVar: "PBS_NUM_NODES",
		WidthVar:     "PBS_NP",
		NodeFileVar:  "PBS_NODEFILE",
	}
}
