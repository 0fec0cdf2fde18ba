package paraxial

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// RunOptions tweaks a Run without touching the system description.
type RunOptions struct {
	// TracePath, when non-empty, is where the traced-ray records are
	// written as JSON.
	TracePath string
}

// Run loads a system description, computes everything the engine knows
// how to compute, logs a report and optionally dumps the traced rays.
// This is the whole engine exercised end to end; rendering stays with
// whoever reads the output.
func Run(cfgPath string, opts RunOptions) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}
	slog.Info("system loaded", "path", cfgPath, "lenses", sys.Len())

	m := sys.SystemMatrix()
	slog.Info("system matrix", "A", m.A, "B", m.B, "C", m.C, "D", m.D)

	cp := sys.CardinalPoints()
	slog.Info("cardinal points",
		"power", cp.Power,
		"efl", fmtReal(cp.EFL),
		"H", cp.FrontPrincipal,
		"H'", cp.BackPrincipal,
		"bfl", fmtReal(cp.BFL),
	)

	src, err := cfg.BuildSource()
	if err != nil {
		return err
	}
	if src == nil {
		return nil
	}

	if ps, ok := src.(PointSource); ok {
		img := sys.Image(ps.Z)
		if img.AtInfinity {
			slog.Info("image at infinity")
		} else {
			slog.Info("image", "z", img.Z, "mag", img.Mag, "virtual", img.Virtual)
		}
	}

	rays, err := sys.RayFan(src, cfg.Rays)
	if err != nil {
		return err
	}
	records := sys.TraceFan(rays)
	blocked := 0
	for _, rec := range records {
		if rec.Blocked {
			blocked++
		}
	}
	slog.Info("traced", "rays", len(records), "vignetted", blocked)

	if opts.TracePath != "" {
		if err := writeTraceRecords(opts.TracePath, records); err != nil {
			return err
		}
		slog.Info("trace written", "path", opts.TracePath)
	}
	return nil
}

func writeTraceRecords(path string, records []TraceRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create trace dir")
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode trace")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write trace")
}

// fmtReal renders +Inf as "inf" so afocal systems report cleanly.
func fmtReal(v Real) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
