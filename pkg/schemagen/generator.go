package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/ironbus-io/ironbus-core/pkg/config"
	"github.com/ironbus-io/ironbus-core/pkg/config/definition"
	"github.com/ironbus-io/ironbus-core/pkg/logger"
)

type Generator struct{}

// Generate writes the configuration artifacts to outDir: a JSON schema for
// editor and CI validation of config documents, and a markdown reference of
// every key with its type, default, and description.
func (g *Generator) Generate(ctx context.Context, outDir string) error {
	log := logger.FromContext(ctx)
	log.Info("Generating configuration reference")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		schemaJSON, err := buildConfigSchema()
		if err != nil {
			return fmt.Errorf("failed to build config schema: %w", err)
		}
		filePath := filepath.Join(outDir, "config.json")
		if err := os.WriteFile(filePath, schemaJSON, 0o600); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", filePath, err)
		}
		log.Info("Generated schema", "file", filePath)
		return nil
	})
	group.Go(func() error {
		filePath := filepath.Join(outDir, "config-keys.md")
		if err := os.WriteFile(filePath, buildKeyReference(), 0o600); err != nil {
			return fmt.Errorf("failed to write key reference to %s: %w", filePath, err)
		}
		log.Info("Generated key reference", "file", filePath)
		return nil
	})
	return group.Wait()
}

func buildConfigSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		FieldNameTag:              "koanf",
		AllowAdditionalProperties: false,
		Mapper:                    mapSchemaType,
	}
	if err := reflector.AddGoComments("github.com/ironbus-io/ironbus-core", "./"); err != nil {
		return nil, fmt.Errorf("failed to add Go comments: %w", err)
	}
	schema := reflector.Reflect(&config.Config{})
	schema.ID = jsonschema.ID("config.json")
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return schemaJSON, nil
}

// mapSchemaType overrides the reflected schema for field types whose
// document form differs from their Go representation.
func mapSchemaType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeOf(time.Duration(0)):
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "integer"},
			},
			Description: "Duration as a Go duration literal or integer nanoseconds",
		}
	case reflect.TypeOf(config.UnableToDeliverStrategy(0)):
		return &jsonschema.Schema{
			Type: "string",
			Enum: []any{
				config.UnableToDeliverStrategyBlock.String(),
				config.UnableToDeliverStrategyDiscardSample.String(),
			},
		}
	}
	return nil
}

func buildKeyReference() []byte {
	registry := definition.CreateRegistry()
	var b strings.Builder
	b.WriteString("# Configuration keys\n\n")
	b.WriteString("| Key | Type | Default | Description |\n")
	b.WriteString("|-----|------|---------|-------------|\n")
	for _, path := range registry.Paths() {
		field, _ := registry.GetField(path)
		fmt.Fprintf(&b, "| `%s` | %s | `%v` | %s |\n",
			path, field.Type.String(), field.Default, field.Help)
	}
	return []byte(b.String())
}
