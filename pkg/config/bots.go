package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// BotSeed is a bot definition loaded from the bots directory at startup.
// Seeds are upserted create-if-absent: existing rows keep their mutable
// mood and urgent-task state.
type BotSeed struct {
	ID        string                 `yaml:"id"`
	Name      string                 `yaml:"name"`
	BasicInfo map[string]interface{} `yaml:"basic_info"`
	BigFive   map[string]float64     `yaml:"big_five"`
	Persona   map[string]interface{} `yaml:"persona"`
	Mood      map[string]interface{} `yaml:"mood"`
}

// loadBotSeeds reads every *.yaml file under dir as one bot definition.
// A missing directory is not an error; a service can run with bots created
// out-of-band only.
func loadBotSeeds(dir string) ([]BotSeed, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read bots directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	seeds := make([]BotSeed, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewLoadError(path, err)
		}
		data = ExpandEnv(data)

		var seed BotSeed
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}
