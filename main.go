package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gouthamgo/apex-academy/cmd"
	"github.com/gouthamgo/apex-academy/internal/site"
)

var meta site.Meta

// loadSiteMeta reads the site-wide display metadata. A missing file is
// fine; the curriculum is compiled in and the config layer supplies a
// default title.
func loadSiteMeta(filename string) error {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading site file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(yamlFile, &meta); err != nil {
		return fmt.Errorf("error unmarshalling site file %s: %w", filename, err)
	}
	return nil
}

func main() {
	if err := loadSiteMeta("site.yaml"); err != nil {
		log.Fatalf("Error loading site metadata: %v", err)
	}
	cmd.Execute(meta)
}
