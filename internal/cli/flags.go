package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile         string
	DBPath          string
	DailyLimit      int
	SessionCapacity int
	LogFile         string
	ListModels      bool

	// Translation provider flags
	Provider        string
	GeminiModel     string
	OpenAIModel     string
	MaxOutputTokens int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DailyLimit:      1500,
		Provider:        "gemini",
		GeminiModel:     "gemini-1.5-flash",
		OpenAIModel:     "gpt-4o-mini",
		MaxOutputTokens: 512,
	}
}
