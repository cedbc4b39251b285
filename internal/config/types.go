package config

// Grid controls the startup visualization.
type Grid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Config represents the .sieve/config.yaml file.
type Config struct {
	// Max is the inclusive upper bound of the prime table.
	Max      uint64 `yaml:"max"`
	Grid     Grid   `yaml:"grid"`
	LogLevel string `yaml:"log_level"`
}
