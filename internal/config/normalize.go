package config

import "strings"

// normalize expands and cleans path fields and trims free-form strings.
// The tasks output directory is deliberately left verbatim: it is a path
// template for another machine, not a local path.
func (c *Config) normalize() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		expanded, err := expandPath(c.Paths.LogDir)
		if err != nil {
			return err
		}
		c.Paths.LogDir = expanded
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Tasks.OutputDir = strings.TrimSpace(c.Tasks.OutputDir)
	c.Tasks.FileExtension = strings.TrimSpace(c.Tasks.FileExtension)
	if c.Tasks.FileExtension != "" && !strings.HasPrefix(c.Tasks.FileExtension, ".") {
		c.Tasks.FileExtension = "." + c.Tasks.FileExtension
	}
	return nil
}
