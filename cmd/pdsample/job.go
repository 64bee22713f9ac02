package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Modes understood by pdsample.
const (
	modeFill    = "fill"
	modeImage   = "image"
	modeMap     = "map"
	modeTerrain = "terrain"
)

// Per-mode defaults for zero-valued job fields.
const (
	defaultFillMin    = 2.0
	defaultImageMin   = 2.0
	defaultTerrainMin = 0.01
	defaultFieldTries = 10
	defaultMapFreq    = 0.01
	defaultMapPixels  = "500x500"
)

var errUsage = errors.New("pdsample: invalid job")

// Job is one sampling request, read from a YAML file and/or flags.
type Job struct {
	Mode     string    `yaml:"mode"`
	Shape    []float64 `yaml:"shape"`
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max"`
	Tries    int       `yaml:"tries"`
	Bias     float64   `yaml:"bias"`
	Seed     int64     `yaml:"seed"`
	Image    string    `yaml:"image"`
	Width    int       `yaml:"width"`
	Extent   []float64 `yaml:"extent"`
	Pixels   string    `yaml:"pixels"`
	Freq     float64   `yaml:"freq"`
	Strength float64   `yaml:"strength"`
	Format   string    `yaml:"format"`
	Output   string    `yaml:"output"`
	Count    int       `yaml:"count"`
	Stats    bool      `yaml:"stats"`
	Verbose  bool      `yaml:"verbose"`

	// Parsed from Pixels by validate.
	canvasW, canvasH int
}

func defaultJob() Job {
	return Job{
		Mode:   modeFill,
		Shape:  []float64{100, 100},
		Format: "csv",
		Output: "-",
		Count:  1,
	}
}

// loadJob reads a YAML job file over the defaults. Unknown keys are errors.
func loadJob(r io.Reader) (Job, error) {
	job := defaultJob()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil && !errors.Is(err, io.EOF) {
		return Job{}, fmt.Errorf("pdsample: job file: %w", err)
	}
	return job, nil
}

// floatList is a comma-separated list of floats, e.g. "100,100".
type floatList []float64

func (l *floatList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// parseArgs builds the Job from args. With -config the YAML file is loaded
// first; flags given explicitly on the command line override it.
func parseArgs(args []string, stderr io.Writer) (Job, error) {
	fs := flag.NewFlagSet("pdsample", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fl := defaultJob()
	config := fs.String("config", "", "YAML job file")
	fs.StringVar(&fl.Mode, "mode", fl.Mode, "fill, image, map or terrain")
	fs.Var((*floatList)(&fl.Shape), "shape", "domain extent per axis, comma separated (fill)")
	fs.Float64Var(&fl.Min, "min", 0, "minimum distance (0 = mode default)")
	fs.Float64Var(&fl.Max, "max", 0, "maximum distance (0 = mode default)")
	fs.IntVar(&fl.Tries, "tries", 0, "candidates per active point (0 = mode default)")
	fs.Float64Var(&fl.Bias, "bias", 0, "variable density bias in [0,1]")
	fs.Int64Var(&fl.Seed, "seed", 0, "random seed")
	fs.StringVar(&fl.Image, "image", "", "input image (image mode)")
	fs.IntVar(&fl.Width, "width", 0, "resample the image to this width first")
	fs.Var((*floatList)(&fl.Extent), "extent", "xMin,xMax,yMin,yMax (terrain mode)")
	fs.StringVar(&fl.Pixels, "pixels", "", "canvas size WxH: noise map size (map), pixel output (terrain)")
	fs.Float64Var(&fl.Freq, "freq", 0, "noise frequency per pixel (map, 0 = mode default)")
	fs.Float64Var(&fl.Strength, "strength", 0, "keep only points at dot level 0 for this strength (terrain)")
	fs.StringVar(&fl.Format, "format", fl.Format, "csv or json")
	fs.StringVar(&fl.Output, "o", fl.Output, "output file, - for stdout")
	fs.IntVar(&fl.Count, "count", fl.Count, "number of independent runs")
	fs.BoolVar(&fl.Stats, "stats", false, "log nearest-neighbour statistics")
	fs.BoolVar(&fl.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return Job{}, err
	}
	if *config == "" {
		if err := fl.validate(); err != nil {
			return Job{}, err
		}
		return fl, nil
	}

	f, err := os.Open(*config)
	if err != nil {
		return Job{}, fmt.Errorf("pdsample: %w", err)
	}
	defer f.Close()
	job, err := loadJob(f)
	if err != nil {
		return Job{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			job.Mode = fl.Mode
		case "shape":
			job.Shape = fl.Shape
		case "min":
			job.Min = fl.Min
		case "max":
			job.Max = fl.Max
		case "tries":
			job.Tries = fl.Tries
		case "bias":
			job.Bias = fl.Bias
		case "seed":
			job.Seed = fl.Seed
		case "image":
			job.Image = fl.Image
		case "width":
			job.Width = fl.Width
		case "extent":
			job.Extent = fl.Extent
		case "pixels":
			job.Pixels = fl.Pixels
		case "freq":
			job.Freq = fl.Freq
		case "strength":
			job.Strength = fl.Strength
		case "format":
			job.Format = fl.Format
		case "o":
			job.Output = fl.Output
		case "count":
			job.Count = fl.Count
		case "stats":
			job.Stats = fl.Stats
		case "v":
			job.Verbose = fl.Verbose
		}
	})
	if err := job.validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (j *Job) validate() error {
	switch j.Mode {
	case modeFill:
		if len(j.Shape) == 0 {
			return fmt.Errorf("%w: fill mode needs a shape", errUsage)
		}
		if j.Min == 0 {
			j.Min = defaultFillMin
		}
	case modeImage:
		if j.Image == "" {
			return fmt.Errorf("%w: image mode needs an image", errUsage)
		}
		if j.Min == 0 {
			j.Min = defaultImageMin
		}
		if j.Tries == 0 {
			j.Tries = defaultFieldTries
		}
	case modeMap:
		if j.Pixels == "" {
			j.Pixels = defaultMapPixels
		}
		if j.Freq == 0 {
			j.Freq = defaultMapFreq
		}
		if j.Min == 0 {
			j.Min = defaultImageMin
		}
		if j.Tries == 0 {
			j.Tries = defaultFieldTries
		}
	case modeTerrain:
		if j.Strength < 0 {
			return fmt.Errorf("%w: strength must not be negative", errUsage)
		}
		if len(j.Extent) != 0 && len(j.Extent) != 4 {
			return fmt.Errorf("%w: extent needs 4 values, got %d", errUsage, len(j.Extent))
		}
		if j.Min == 0 {
			j.Min = defaultTerrainMin
		}
		if j.Tries == 0 {
			j.Tries = defaultFieldTries
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, j.Mode)
	}
	if j.Pixels != "" {
		w, h, err := parseSize(j.Pixels)
		if err != nil {
			return err
		}
		j.canvasW, j.canvasH = w, h
	}
	if j.Format != "csv" && j.Format != "json" {
		return fmt.Errorf("%w: unknown format %q", errUsage, j.Format)
	}
	if j.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1", errUsage)
	}
	return nil
}

// parseSize parses a canvas size such as "640x480".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.Atoi(ws)
	}
	if ok && err == nil {
		h, err = strconv.Atoi(hs)
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: bad canvas size %q", errUsage, s)
	}
	return w, h, nil
}
