// Package options supplies the option lists the demo selects are built from.
package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/zamm-dev/zamm-select/internal/cli/interactive/common"
	"github.com/zamm-dev/zamm-select/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultCount is the number of built-in options
const DefaultCount = 5

// File is the on-disk layout of an options file
type File struct {
	Options []Entry `yaml:"options"`
}

// Entry is one option in an options file. Value may be a string or a number.
type Entry struct {
	Label string `yaml:"label"`
	Value any    `yaml:"value"`
}

// Default returns "Option 1" through "Option 5"
func Default() []*common.Option {
	return common.NewNumberedOptions(DefaultCount)
}

// LoadFile reads options from a YAML file
func LoadFile(path string) ([]*common.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewSelectErrorWithCause(models.ErrTypeNotFound, fmt.Sprintf("options file not found: %s", path), err)
		}
		return nil, models.NewSelectErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to read options file: %s", path), err)
	}
	return Parse(data)
}

// Parse decodes an options document
func Parse(data []byte) ([]*common.Option, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, models.NewSelectErrorWithCause(models.ErrTypeValidation, "failed to parse options file", err)
	}
	if len(file.Options) == 0 {
		return nil, models.NewSelectError(models.ErrTypeValidation, "options file lists no options")
	}

	result := make([]*common.Option, 0, len(file.Options))
	for i, entry := range file.Options {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			return nil, models.NewSelectError(models.ErrTypeValidation, "option label is empty").
				WithDetails(fmt.Sprintf("entry %d", i+1))
		}
		value, err := normalizeValue(entry.Value)
		if err != nil {
			return nil, err.WithDetails(fmt.Sprintf("entry %d (%s)", i+1, label))
		}
		result = append(result, common.NewOption(label, value))
	}
	return result, nil
}

// normalizeValue accepts strings and numbers. A missing value falls back
// to nothing, which keeps the option selectable by identity.
func normalizeValue(v any) (any, *models.SelectError) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string, int, int64, uint64, float64:
		return v, nil
	default:
		return nil, models.NewSelectError(models.ErrTypeValidation, fmt.Sprintf("option value must be a string or number, got %T", v))
	}
}

// Write stores options in the YAML layout read by LoadFile
func Write(path string, opts []*common.Option) error {
	file := File{Options: make([]Entry, 0, len(opts))}
	for _, o := range opts {
		file.Options = append(file.Options, Entry{Label: o.Label, Value: o.Value})
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return models.NewSelectErrorWithCause(models.ErrTypeSystem, "failed to encode options", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return models.NewSelectErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write options file: %s", path), err)
	}
	return nil
}
