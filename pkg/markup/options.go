package markup

// Option configures a Wrapper or Table at construction time.
type Option func(*config)

type config struct {
	compact   bool
	indent    string
	sanitizer Sanitizer
}

func defaultConfig() config {
	return config{compact: true}
}

func buildConfig(options []Option) config {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithCompact toggles compact output. Compact wrappers emit a single line with
// no separators or indentation; non-compact wrappers put the opening tag, each
// content line and the closing tag on their own lines. Wrappers are compact by
// default.
func WithCompact(compact bool) Option {
	return func(cfg *config) {
		cfg.compact = compact
	}
}

// WithIndent sets the prefix written before every content line in non-compact
// mode.
func WithIndent(indent string) Option {
	return func(cfg *config) {
		cfg.indent = indent
	}
}

// WithSanitizer filters unescaped content through s before formatting. It has
// no effect on renders that request escaping.
func WithSanitizer(s Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitizer = s
	}
}

// RenderOptions control a single Render call.
type RenderOptions struct {
	// Escape replaces &, <, > and " with their character entities.
	Escape bool
	// Strip trims surrounding whitespace from each content line. Compact
	// wrappers always trim.
	Strip bool
}
