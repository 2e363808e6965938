package asciify

// Config is everything a single conversion needs. It is built once, before
// any image is read, and passed around by value.
type Config struct {
	Source string // Path of the image to convert.
	Save   bool   // Write to a file instead of stdout.
	Path   string // File to write when saving; see SavePath.

	Options
}

// Validate reports the first problem that would stop the conversion.
func (c Config) Validate() error {
	if c.Source == "" {
		return ErrMissingArgs
	}
	return c.Options.Validate()
}

// Output returns the file rows are saved to, or "" when they go to stdout.
func (c Config) Output() string {
	if !c.Save {
		return ""
	}
	return SavePath(c.Source, c.Path)
}
