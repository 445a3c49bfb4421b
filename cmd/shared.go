package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/camaclean/alpsinfo/internal/alps"
	"github.com/camaclean/alpsinfo/internal/config"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat is the --output flag value
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !config.IsValidOutput(s) {
		return fmt.Errorf("must be one of %s", strings.Join(config.OutputFormats(), ", "))
	}
	*o = outputFormat(s)
	return nil
}

func (o *outputFormat) Type() string { return "format" }

var (
	// newService and lookupEnv are replaced in tests
	newService                 = alps.NewService
	lookupEnv  alps.LookupFunc = os.LookupEnv

	placementCtx *alps.Context
)

// getContext returns the placement context, creating it on first use
func getContext() *alps.Context {
	if placementCtx == nil {
		fallback := &alps.Fallback{
			Lookup:       lookupEnv,
			NodeCountVar: config.Global.NodeCountVar,
			WidthVar:     config.Global.WidthVar,
			NodeFileVar:  config.Global.NodeFileVar,
			JobIDVar:     alps.DefaultJobIDVar,
		}
		placementCtx = alps.New(alps.Options{
			Lookup:   lookupEnv,
			ApidVar:  config.Global.ApidVar,
			Service:  newService(),
			Fallback: fallback,
		})
	}
	return placementCtx
}

// closeContext releases the placement context, if one was created
func closeContext() {
	if placementCtx != nil {
		placementCtx.Close()
		placementCtx = nil
	}
}

// render writes v as JSON or YAML, or calls text for the text format
func render(w io.Writer, v interface{}, text func(io.Writer)) error {
	switch config.Global.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}
