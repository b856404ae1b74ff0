package config

type SecurityConfig struct {
	DeleteToken string   `yaml:"delete_token"`
	AllowedIDs  []string `yaml:"allowed_ids"`
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		DeleteToken: getEnv("DELETE_TOKEN", ""),
		// Empty list means every operator is allowed.
		AllowedIDs: getEnvAsSlice("BOT_ALLOWED_IDS", []string{}),
	}
}
