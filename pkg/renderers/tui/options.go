package tui

// DefaultMaxAttempts bounds how often a session re-prompts after a failed
// submit.
const DefaultMaxAttempts = 3

// Theme holds message prefixes the session prints before info and errors.
type Theme struct {
	SectionPrefix string
	ErrorPrefix   string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithMaxAttempts sets the number of submit attempts before giving up.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
