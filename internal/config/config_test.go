package config

import "testing"

func TestStoreCredentialPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantURL   string
		wantToken string
	}{
		{
			name: "current names win",
			env: map[string]string{
				"KV_REST_API_URL":          "https://current.example.com",
				"KV_REST_API_TOKEN":        "current-token",
				"UPSTASH_REDIS_REST_URL":   "https://legacy.example.com",
				"UPSTASH_REDIS_REST_TOKEN": "legacy-token",
			},
			wantURL:   "https://current.example.com",
			wantToken: "current-token",
		},
		{
			name: "legacy names as fallback",
			env: map[string]string{
				"UPSTASH_REDIS_REST_URL":   "https://legacy.example.com",
				"UPSTASH_REDIS_REST_TOKEN": "legacy-token",
			},
			wantURL:   "https://legacy.example.com",
			wantToken: "legacy-token",
		},
		{
			name: "mixed naming",
			env: map[string]string{
				"KV_REST_API_URL":          "https://current.example.com",
				"UPSTASH_REDIS_REST_TOKEN": "legacy-token",
			},
			wantURL:   "https://current.example.com",
			wantToken: "legacy-token",
		},
		{
			name:      "nothing set",
			env:       map[string]string{},
			wantURL:   "",
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{
				"KV_REST_API_URL", "KV_REST_API_TOKEN",
				"UPSTASH_REDIS_REST_URL", "UPSTASH_REDIS_REST_TOKEN",
			} {
				t.Setenv(key, tt.env[key])
			}

			cfg := Load()
			if cfg.KVRestURL != tt.wantURL {
				t.Errorf("KVRestURL = %q, want %q", cfg.KVRestURL, tt.wantURL)
			}
			if cfg.KVRestToken != tt.wantToken {
				t.Errorf("KVRestToken = %q, want %q", cfg.KVRestToken, tt.wantToken)
			}
		})
	}
}

func TestStoreConfigured(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		token string
		want  bool
	}{
		{"both set", "https://kv.example.com", "token", true},
		{"missing token", "https://kv.example.com", "", false},
		{"missing url", "", "token", false},
		{"both missing", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{KVRestURL: tt.url, KVRestToken: tt.token}
			if got := cfg.StoreConfigured(); got != tt.want {
				t.Errorf("StoreConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("BASE_URL", "")

	cfg := Load()
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q, want http://localhost:3000", cfg.BaseURL)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false, want true for default env")
	}
}
