package summarize

// Default thresholds and messages used by DefaultConfig.
const (
	DefaultTitleMarker     = "Title:"
	DefaultMissingTitle    = "No title found"
	DefaultMinAlphaRatio   = 0.5
	DefaultWindowRadius    = 10
	DefaultMinBulletLength = 25
	DefaultMaxBullets      = 7
	DefaultFallbackBullet  = "A concise summary could not be extracted from this page."
)

// DefaultTitleSeparators are checked in order; the first one present wins.
var DefaultTitleSeparators = []string{" - ", " | "}

// DefaultBoilerplatePhrases are navigation and UI phrases removed from page text.
var DefaultBoilerplatePhrases = []string{
	"Jump to content",
	"Main menu",
	"Toggle navigation",
	"Search results",
	"Log in",
	"Sign up",
	"About Wikipedia",
	"Contact us",
	"Donate",
	"Help",
}

// Config holds the thresholds of the summary pipeline.
// Zero values are replaced by the defaults, so a partially filled Config is valid.
type Config struct {
	// TitleMarker starts the line that carries the page title.
	TitleMarker string

	// MissingTitle is used as the title when no line starts with TitleMarker.
	MissingTitle string

	// TitleSeparators split a title from its site suffix, in priority order.
	TitleSeparators []string

	// BoilerplatePhrases are removed case-insensitively before line filtering.
	BoilerplatePhrases []string

	// MinAlphaRatio is the ratio of ASCII letters to line length a line must exceed.
	// Values <= 0 mean unset and take DefaultMinAlphaRatio, so a ratio of 0
	// cannot be expressed; use a small positive value such as 1e-9 instead.
	MinAlphaRatio float64

	// WindowRadius is the number of lines kept on each side of the longest line.
	// Values <= 0 take DefaultWindowRadius.
	WindowRadius int

	// MinBulletLength is the length in characters a bullet must exceed.
	MinBulletLength int

	// MaxBullets caps the number of bullets returned.
	MaxBullets int

	// FallbackBullet is returned as the only bullet when nothing qualifies.
	FallbackBullet string
}

// DefaultConfig returns the configuration used by Summarize.
func DefaultConfig() Config {
	return Config{
		TitleMarker:        DefaultTitleMarker,
		MissingTitle:       DefaultMissingTitle,
		TitleSeparators:    append([]string(nil), DefaultTitleSeparators...),
		BoilerplatePhrases: append([]string(nil), DefaultBoilerplatePhrases...),
		MinAlphaRatio:      DefaultMinAlphaRatio,
		WindowRadius:       DefaultWindowRadius,
		MinBulletLength:    DefaultMinBulletLength,
		MaxBullets:         DefaultMaxBullets,
		FallbackBullet:     DefaultFallbackBullet,
	}
}

// withDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TitleMarker == "" {
		c.TitleMarker = def.TitleMarker
	}
	if c.MissingTitle == "" {
		c.MissingTitle = def.MissingTitle
	}
	if c.TitleSeparators == nil {
		c.TitleSeparators = def.TitleSeparators
	}
	if c.BoilerplatePhrases == nil {
		c.BoilerplatePhrases = def.BoilerplatePhrases
	}
	if c.MinAlphaRatio <= 0 {
		c.MinAlphaRatio = def.MinAlphaRatio
	}
	if c.WindowRadius <= 0 {
		c.WindowRadius = def.WindowRadius
	}
	if c.MinBulletLength <= 0 {
		c.MinBulletLength = def.MinBulletLength
	}
	if c.MaxBullets <= 0 {
		c.MaxBullets = def.MaxBullets
	}
	if c.FallbackBullet == "" {
		c.FallbackBullet = def.FallbackBullet
	}
	return c
}
