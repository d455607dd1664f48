package config

const (
	defaultLogDir         = "~/.local/share/megone/logs"
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
	defaultFuzzyThreshold = 0.8
	defaultTasksOutputDir = `Z:\Pessoal\2025\GMS`
	defaultTasksExtension = ".pdf"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Matching: Matching{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Tasks: Tasks{
			OutputDir:     defaultTasksOutputDir,
			FileExtension: defaultTasksExtension,
		},
	}
}
