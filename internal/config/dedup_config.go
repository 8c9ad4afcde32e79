package config

// setDedupDefaults installs default values for duplicate detection settings.
func setDedupDefaults() {
	setDefault("dedup_criteria", "reason_text")
	setDefault("dedup_window", "")
}

// registerDedupValidators registers validators for duplicate detection settings.
func registerDedupValidators() {
	RegisterValidator("dedup_criteria", EnumValidator("text", "reason_text", "exact"))
	RegisterValidator("dedup_window", DurationValidator(true))
}
