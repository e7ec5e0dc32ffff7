package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poreflow/solver"
	"github.com/katalvlaran/poreflow/transport"
)

// Solver methods accepted in SolverConfig.Method.
const (
	MethodCholesky = "cholesky"
	MethodLU       = "lu"
)

// DefaultLevel is the log level used when the file names none.
const DefaultLevel = "info"

// Config is the decoded settings file.
type Config struct {
	Transport transport.Settings `yaml:"transport"`
	Solver    SolverConfig       `yaml:"solver"`
	Log       LogConfig          `yaml:"log"`
}

// SolverConfig selects the factorization used by solver.Dense.
type SolverConfig struct {
	// Method is MethodLU (default) or MethodCholesky (falls back to LU).
	Method string `yaml:"method"`
	// SymmetryTolerance bounds |A[i,j] - A[j,i]| for the Cholesky path.
	SymmetryTolerance float64 `yaml:"symmetry_tolerance"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings used for keys a file leaves out.
func Default() *Config {
	return &Config{
		Transport: transport.DefaultSettings(),
		Solver: SolverConfig{
			Method:            MethodLU,
			SymmetryTolerance: solver.DefaultSymmetryTolerance,
		},
		Log: LogConfig{Level: DefaultLevel},
	}
}

// Load decodes one YAML document from r over Default and validates it.
// An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, configErrorf("Load", fmt.Errorf("%w: %w", ErrParse, err))
	}
	cfg.Solver.Method = strings.ToLower(strings.TrimSpace(cfg.Solver.Method))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return nil, configErrorf("Load", err)
	}

	return cfg, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, configErrorf("LoadFile", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, configErrorf(path, err)
	}

	return cfg, nil
}

// Validate checks the solver block and the log level. Transport settings
// are checked by transport.Transport.Run, since the phase name may come
// from the phase object.
func (c *Config) Validate() error {
	switch c.Solver.Method {
	case MethodCholesky, MethodLU:
	default:
		return fmt.Errorf("%w: method %q", ErrInvalidSolver, c.Solver.Method)
	}
	tol := c.Solver.SymmetryTolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("%w: symmetry_tolerance %g", ErrInvalidSolver, tol)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// Marshal encodes c back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, configErrorf("Marshal", err)
	}

	return out, nil
}

// SolverOptions returns the solver.Dense options c describes.
func (c *Config) SolverOptions(logger *slog.Logger) []solver.Option {
	opts := []solver.Option{
		solver.WithSymmetryTolerance(c.Solver.SymmetryTolerance),
		solver.WithLogger(logger),
	}
	if c.Solver.Method == MethodCholesky {
		opts = append(opts, solver.WithCholesky())
	}

	return opts
}

// NewSolver builds the solver c describes.
func (c *Config) NewSolver(logger *slog.Logger) *solver.Dense {
	return solver.NewDense(c.SolverOptions(logger)...)
}

// TransportOptions returns the transport options c describes.
func (c *Config) TransportOptions(logger *slog.Logger) []transport.Option {
	return []transport.Option{
		transport.WithSettings(c.Transport),
		transport.WithLogger(logger),
	}
}
