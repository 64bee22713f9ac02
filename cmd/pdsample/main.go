// Command pdsample generates Poisson-disk point sets and writes them as CSV
// or JSON.
//
// Modes:
//
//	fill     fixed-density fill of a D-dimensional box (-shape, -min, -max)
//	image    variable-density stippling driven by image brightness (-image)
//	map      variable-density stippling of a generated noise map (-pixels, -freq)
//	terrain  variable-density fill over a warped random terrain (-extent);
//	         -strength keeps only the sparsest dot level and -pixels maps
//	         points onto a W×H canvas
//
// A YAML job file (-config) supplies defaults; explicit flags override it.
// With -count N, N independent runs execute in parallel, each on its own
// random stream derived from -seed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/poissondisk/density"
	"github.com/katalvlaran/poissondisk/extent"
	"github.com/katalvlaran/poissondisk/geom"
	"github.com/katalvlaran/poissondisk/nnstats"
	"github.com/katalvlaran/poissondisk/rng"
	"github.com/katalvlaran/poissondisk/sampler"
)

// canvasAspect is the width/height ratio of the default terrain canvas.
const canvasAspect = 1 / 1.4

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("pdsample failed", "err", err)
		}
		os.Exit(1)
	}
}

// result is the output of one run. densities is nil for fixed-density runs.
type result struct {
	points    []geom.Point
	densities []float64
}

func run(args []string, stdout, stderr io.Writer) error {
	job, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if job.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	sampler.SetLogger(logger)
	defer sampler.SetLogger(nil)

	var field *density.ImageField
	if job.Mode == modeImage {
		if field, err = loadImageField(logger, job.Image, job.Width); err != nil {
			return err
		}
	}

	streams := rng.Streams(job.Seed, job.Count)
	results := make([]result, job.Count)
	errs := make([]error, job.Count)
	var wg sync.WaitGroup
	for i := range job.Count {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = generate(job, field, streams[i])
			if errs[i] != nil {
				errs[i] = fmt.Errorf("run %d: %w", i, errs[i])
			}
		}(i)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return err
	}

	for i, r := range results {
		logger.Info("run complete", "run", i, "mode", job.Mode, "points", len(r.points))
		if !job.Stats {
			continue
		}
		if s, err := nnstats.Summarize(r.points); err != nil {
			logger.Warn("no spacing statistics", "run", i, "err", err)
		} else {
			logger.Info("spacing", "run", i, "summary", s.String())
		}
	}

	if job.Output == "-" || job.Output == "" {
		return write(stdout, job.Format, results)
	}
	f, err := os.Create(job.Output)
	if err != nil {
		return fmt.Errorf("pdsample: %w", err)
	}
	return errors.Join(write(f, job.Format, results), f.Close())
}

func write(w io.Writer, format string, results []result) error {
	if format == "json" {
		return writeJSON(w, results)
	}
	return writeCSV(w, results)
}

// fieldStream identifies the stream that builds a run's density field, kept
// apart from the stream driving the sampler.
const fieldStream = 1

// generate performs one run of job with its own random stream.
func generate(job Job, field *density.ImageField, src *rand.Rand) (result, error) {
	switch job.Mode {
	case modeImage:
		return particles(job, field, src)

	case modeMap:
		fieldSrc := rng.Derive(src, fieldStream)
		img, err := density.NoiseImage(job.canvasW, job.canvasH, job.Freq, fieldSrc.Int63(), fieldSrc)
		if err != nil {
			return result{}, err
		}
		noise, err := density.NewImageField(img, density.DefaultImageOptions())
		if err != nil {
			return result{}, err
		}
		return particles(job, noise, src)

	case modeTerrain:
		return terrain(job, src)

	default:
		s, err := sampler.New(sampler.Config{
			Shape:       job.Shape,
			MinDistance: job.Min,
			MaxDistance: job.Max,
			MaxTries:    job.Tries,
			Rand:        src,
		})
		if err != nil {
			return result{}, err
		}
		return result{points: s.Fill()}, nil
	}
}

// particles stipples field and records the density under every particle.
func particles(job Job, field *density.ImageField, src *rand.Rand) (result, error) {
	cfg := density.DefaultParticleConfig(job.Min)
	if job.Max > 0 {
		cfg.MaxDistance = job.Max
	}
	cfg.MaxTries = job.Tries
	cfg.Bias = job.Bias
	cfg.Rand = src
	ps, err := density.Particles(field, cfg)
	if err != nil {
		return result{}, err
	}
	r := result{points: make([]geom.Point, len(ps)), densities: make([]float64, len(ps))}
	for i, p := range ps {
		r.points[i] = p.Point
		r.densities[i] = field.Density(p.Point)
	}
	return r, nil
}

// terrain grows points one at a time over a random terrain. With a strength,
// only points whose DotLevel is 0 are kept; with a canvas, points are written
// as pixel coordinates.
func terrain(job Job, src *rand.Rand) (result, error) {
	ext := extent.Centered(2, 2/canvasAspect).Inset(0.05)
	var mapper *extent.PixelMapper
	if job.canvasW > 0 {
		mapper = extent.NewPixelMapper(job.canvasW, job.canvasH)
		ext = mapper.Extent().Inset(0.05)
	}
	if len(job.Extent) == 4 {
		ext = extent.Extent{XMin: job.Extent[0], XMax: job.Extent[1], YMin: job.Extent[2], YMax: job.Extent[3]}
	}

	fieldSrc := rng.Derive(src, fieldStream)
	t, err := density.RandomTerrain(ext, fieldSrc.Int63(), fieldSrc)
	if err != nil {
		return result{}, err
	}
	maxDist := job.Max
	if maxDist == 0 {
		maxDist = job.Min * (5 + 5*src.Float64())
	}
	w, err := extent.New(ext, sampler.Config{
		MinDistance: job.Min,
		MaxDistance: maxDist,
		MaxTries:    job.Tries,
		Density:     t.Density,
		Bias:        job.Bias,
		Rand:        src,
	})
	if err != nil {
		return result{}, err
	}

	r := result{densities: []float64{}}
	emit := func(p geom.Point) {
		d, _ := w.LastDensity()
		if job.Strength > 0 && density.DotLevel(d, job.Strength) != 0 {
			return
		}
		if mapper != nil {
			col, row := mapper.ToPixel(p)
			p = geom.Pt(col, row)
		}
		r.points = append(r.points, p)
		r.densities = append(r.densities, d)
	}
	emit(w.Points()[0])
	for {
		p, ok := w.Next()
		if !ok {
			break
		}
		emit(p)
	}
	return r, nil
}

// loadImageField decodes path and builds its density field.
func loadImageField(logger *slog.Logger, path string, width int) (*density.ImageField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdsample: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pdsample: decode %s: %w", path, err)
	}
	logger.Debug("image decoded", "path", path, "format", format, "bounds", img.Bounds().String())

	opts := density.DefaultImageOptions()
	opts.Width = width
	return density.NewImageField(img, opts)
}
