package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/msp-alert-engine/tools/dashgen/dashboards"
	"github.com/donaldgifford/msp-alert-engine/tools/dashgen/rules"
	"github.com/donaldgifford/msp-alert-engine/tools/dashgen/validate"
)

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// artifact is one generated file relative to the output directory.
type artifact struct {
	path string
	data []byte
}

func run(cfg Config, validateOnly bool) error {
	arts, res, err := generate(cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !res.Ok() {
		return errors.New("validation failed:\n  " + strings.Join(res.Errors, "\n  "))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	for _, a := range arts {
		path := filepath.Join(cfg.OutputDir, a.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, a.data, 0o644); err != nil { //nolint:gosec // generated manifests are world-readable
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("dashgen: wrote %s\n", path)
	}
	return nil
}

// generate builds every enabled artifact and validates its PromQL.
func generate(cfg Config) ([]artifact, validate.Result, error) {
	var (
		arts []artifact
		res  validate.Result
	)

	if cfg.DashboardEnabled {
		dash, err := dashboards.BuildOverview().Build()
		if err != nil {
			return nil, res, fmt.Errorf("building dashboard: %w", err)
		}
		data, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return nil, res, fmt.Errorf("marshaling dashboard: %w", err)
		}
		arts = append(arts, artifact{
			path: filepath.Join("grafana", "data", dashboards.UID+".json"),
			data: append(data, '\n'),
		})
		merge(&res, validate.Dashboard(dash, KnownMetrics))
	}

	if cfg.RulesEnabled {
		for _, cr := range []rules.PrometheusRule{rules.RecordingRules(), rules.AlertRules()} {
			data, err := yaml.Marshal(cr)
			if err != nil {
				return nil, res, fmt.Errorf("marshaling %s: %w", cr.Metadata.Name, err)
			}
			arts = append(arts, artifact{
				path: filepath.Join("prometheus", cr.Metadata.Name+".yaml"),
				data: append([]byte(generatedHeader), data...),
			})
			merge(&res, validate.Rules(cr, KnownMetrics))
		}
	}

	return arts, res, nil
}

func merge(dst *validate.Result, src validate.Result) {
	dst.Errors = append(dst.Errors, src.Errors...)
	dst.Warnings = append(dst.Warnings, src.Warnings...)
}
