package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.config/idcheck",
			SQLiteFile: "idcheck.db",
		},
		Dataset: DatasetConfig{
			Path: "",
		},
		Output: OutputConfig{
			LookupURL: "",
			MaxRows:   100,
		},
	}
}
