// Package intervalfile loads named intervals from YAML files into an
// interval tree.
package intervalfile

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/inodb/intervaltree"
)

// File is the on-disk document:
//
//	intervals:
//	  - name: a
//	    start: 50
//	    end: 100
//	  - name: tail
//	    start: 200
//	    end: +inf
type File struct {
	Intervals []Entry `yaml:"intervals"`
}

// Entry is one named interval. Start and End accept numbers or the strings
// "-inf" and "+inf".
type Entry struct {
	Name  string `yaml:"name"`
	Start any    `yaml:"start"`
	End   any    `yaml:"end"`
}

// Loader reads interval files.
type Loader struct {
	logger *zap.Logger
}

func NewLoader() *Loader {
	return &Loader{logger: zap.NewNop()}
}

// SetLogger installs a logger, propagated to the trees the loader builds.
func (l *Loader) SetLogger(lg *zap.Logger) {
	l.logger = lg
}

// Load reads the YAML file at path and indexes its intervals.
func (l *Loader) Load(path string) (*intervaltree.Tree[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interval file: %w", err)
	}
	defer f.Close()

	tr, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tr, nil
}

// Parse reads a YAML interval document and indexes its intervals.
func (l *Loader) Parse(r io.Reader) (*intervaltree.Tree[float64], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read intervals: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal intervals: %w", err)
	}

	tr := intervaltree.New[float64]()
	tr.SetLogger(l.logger)
	for i, e := range file.Intervals {
		if e.Name == "" {
			return nil, fmt.Errorf("interval %d: missing name", i)
		}
		start, err := ParseBound(e.Start)
		if err != nil {
			return nil, fmt.Errorf("interval %q: start: %w", e.Name, err)
		}
		end, err := ParseBound(e.End)
		if err != nil {
			return nil, fmt.Errorf("interval %q: end: %w", e.Name, err)
		}
		if err := tr.Add(start, end, e.Name); err != nil {
			return nil, err
		}
	}

	l.logger.Debug("loaded intervals", zap.Int("count", tr.Len()))
	return tr, nil
}

// ParseBound converts a YAML scalar or command-line argument into a bound:
// numbers are finite bounds, "-inf" and "+inf" (or "inf") are the sentinels.
func ParseBound(v any) (intervaltree.Bound[float64], error) {
	switch x := v.(type) {
	case int:
		return intervaltree.Value(float64(x)), nil
	case int64:
		return intervaltree.Value(float64(x)), nil
	case float64:
		return intervaltree.Value(x), nil
	case string:
		switch x {
		case "-inf":
			return intervaltree.NegInf[float64](), nil
		case "+inf", "inf":
			return intervaltree.PosInf[float64](), nil
		}
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return intervaltree.Bound[float64]{}, fmt.Errorf("bad bound %q (want a number, -inf, or +inf)", x)
		}
		return intervaltree.Value(f), nil
	case nil:
		return intervaltree.Bound[float64]{}, fmt.Errorf("missing bound")
	default:
		return intervaltree.Bound[float64]{}, fmt.Errorf("bad bound type %T", v)
	}
}
