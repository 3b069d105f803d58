package cmd

import "testing"

func TestConfigDefaults(t *testing.T) {
	cfgFile = ""
	if err := initializeConfig(nil); err != nil {
		t.Fatalf("initializeConfig() unexpected error: %v", err)
	}
	if appConfig.OutputDir != "public" {
		t.Errorf("OutputDir = %q, want default %q", appConfig.OutputDir, "public")
	}
	if appConfig.SiteTitle != "Apex Academy" {
		t.Errorf("SiteTitle = %q, want default %q", appConfig.SiteTitle, "Apex Academy")
	}
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("APEXACADEMY_OUTPUTDIR", "dist")
	cfgFile = ""
	if err := initializeConfig(nil); err != nil {
		t.Fatalf("initializeConfig() unexpected error: %v", err)
	}
	if appConfig.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want env override %q", appConfig.OutputDir, "dist")
	}
}

func TestConfigMissingExplicitFile(t *testing.T) {
	cfgFile = "does-not-exist.yaml"
	defer func() { cfgFile = "" }()
	if err := initializeConfig(nil); err == nil {
		t.Fatal("explicitly named missing config file must be an error")
	}
}
