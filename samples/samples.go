package samples

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// Default per-sample parameters.
const (
	DefaultReceptorSize = 2
	DefaultTemperature  = 1.0
	DefaultIterations   = 2
	DefaultScreenshots  = 1
	DefaultOutputSize   = 32
)

var (
	// ErrNoSamples indicates a document without any <sample> element.
	ErrNoSamples = errors.New("samples: document lists no samples")
	// ErrSampleName indicates a sample with an empty name.
	ErrSampleName = errors.New("samples: sample name must be non-empty")
	// ErrDuplicateSample indicates two samples sharing a name.
	ErrDuplicateSample = errors.New("samples: duplicate sample name")
)

// Sample describes one exemplar and how to synthesize from it.
type Sample struct {
	Name         string
	ReceptorSize int
	Temperature  float64
	Iterations   int
	Screenshots  int
	OutputSize   int
}

// Set is an ordered list of samples as they appear in the document.
type Set struct {
	Samples []Sample
}

// rawSample mirrors the XML element; nil fields take defaults.
type rawSample struct {
	Name         string   `xml:"name,attr"`
	ReceptorSize *int     `xml:"receptorSize,attr"`
	Temperature  *float64 `xml:"temperature,attr"`
	Iterations   *int     `xml:"iterations,attr"`
	Screenshots  *int     `xml:"screenshots,attr"`
	OutputSize   *int     `xml:"outputSize,attr"`
}

type rawSet struct {
	XMLName xml.Name    `xml:"samples"`
	Samples []rawSample `xml:"sample"`
}

// Load reads and parses the sample-set file at path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("samples: open %s: %w", path, err)
	}
	defer f.Close()

	set, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Decode parses a sample-set document from r and applies defaults.
func Decode(r io.Reader) (*Set, error) {
	var raw rawSet
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("samples: decode: %w", err)
	}
	if len(raw.Samples) == 0 {
		return nil, ErrNoSamples
	}

	set := &Set{Samples: make([]Sample, 0, len(raw.Samples))}
	seen := make(map[string]bool, len(raw.Samples))
	for i, rs := range raw.Samples {
		if rs.Name == "" {
			return nil, fmt.Errorf("sample #%d: %w", i+1, ErrSampleName)
		}
		if seen[rs.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSample, rs.Name)
		}
		seen[rs.Name] = true
		set.Samples = append(set.Samples, rs.resolve())
	}

	return set, nil
}

func (rs rawSample) resolve() Sample {
	return Sample{
		Name:         rs.Name,
		ReceptorSize: orDefault(rs.ReceptorSize, DefaultReceptorSize),
		Temperature:  orDefault(rs.Temperature, DefaultTemperature),
		Iterations:   orDefault(rs.Iterations, DefaultIterations),
		Screenshots:  orDefault(rs.Screenshots, DefaultScreenshots),
		OutputSize:   orDefault(rs.OutputSize, DefaultOutputSize),
	}
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}

	return *v
}

// Lookup returns the sample called name.
func (s *Set) Lookup(name string) (Sample, bool) {
	for _, smp := range s.Samples {
		if smp.Name == name {
			return smp, true
		}
	}

	return Sample{}, false
}
