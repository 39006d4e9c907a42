package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark    = "v1.1.0"
	Seq_Modeller = "v1.0.0"
	Sanity_check = "v1.1.0"
)
