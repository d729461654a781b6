package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/gridrec/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gridrec", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
GridRec - schema-driven record containers for measurement pipelines.

Usage:
  gridrec [options] [SCHEMA_PATH]

Arguments:
  SCHEMA_PATH
    Path to a single .hcl manifest or a directory containing .hcl manifests.

Without -type, every record type declared in the manifests is described.
With -type, one instance of the named type is built from its defaults and
printed as a JSON projection.

Options:
`)
		flagSet.PrintDefaults()
	}

	schemasFlag := flagSet.String("schemas", "", "Path to the manifest file or directory.")
	sFlag := flagSet.String("s", "", "Path to the manifest file or directory (shorthand).")
	typeFlag := flagSet.String("type", "", "Record type to instantiate and project.")
	recursiveFlag := flagSet.Bool("recursive", false, "Expand nested records and maps in the projection.")
	flattenFlag := flagSet.Bool("flatten", false, "Flatten the recursive projection into one level with underscore-joined keys.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *schemasFlag != "" {
		path = *schemasFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// Flatten is defined in terms of the recursive projection, so asking
	// for it implies recursion rather than erroring at the CLI surface.
	recursive := *recursiveFlag || *flattenFlag

	config, err := app.NewConfig(app.Config{
		SchemasPath: path,
		TypeName:    *typeFlag,
		Recursive:   recursive,
		Flatten:     *flattenFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
