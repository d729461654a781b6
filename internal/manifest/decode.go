package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gridrec/internal/ctxlog"
)

// DecodeManifestFile parses and decodes a single HCL manifest file into its
// record block declarations.
func DecodeManifestFile(ctx context.Context, filePath string) (*ManifestConfig, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding manifest file.", "path", filePath)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %s", filePath, diags.Error())
	}

	var config ManifestConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %s", filePath, diags.Error())
	}

	logger.Debug("Successfully decoded manifest file.", "path", filePath, "records_found", len(config.Records))
	return &config, nil
}
