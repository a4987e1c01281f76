package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/wbrown/wfc"
	"github.com/wbrown/wfc/imageutil"
)

var (
	red   = imageutil.RGB{R: 200, G: 40, B: 40}
	cream = imageutil.RGB{R: 240, G: 230, B: 200}
	blue  = imageutil.RGB{R: 40, G: 70, B: 160}
)

// loadSample resolves the sample grid from either -input or -gen.
func loadSample(inputFile, gen string, genSize int, seed int64) (imageutil.Grid, error) {
	switch {
	case inputFile != "":
		return imageutil.LoadGrid(inputFile)
	case gen == "noise":
		return imageutil.NoiseGrid(genSize, genSize, seed, 0.12, red, cream, blue), nil
	case gen == "checker":
		return imageutil.CheckerboardGrid(genSize, genSize, 2, red, cream), nil
	case gen == "stripes":
		return imageutil.StripeGrid(genSize, genSize, red, cream, blue), nil
	case gen != "":
		return nil, fmt.Errorf("unknown generator %q, options are noise, checker, or stripes", gen)
	default:
		return nil, fmt.Errorf("no sample: pass -input or -gen")
	}
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input sample image (required unless -gen is given)")
	gen := flag.String("gen", "",
		"Generate a synthetic sample instead of -input: noise, checker, or stripes")
	genSize := flag.Int("gensize", 32,
		"Side length of the generated sample")
	outputFile := flag.String("output", "out.png",
		"Path to save the synthesized image")
	k := flag.Int("k", 3,
		"Window size of the tile alphabet")
	width := flag.Int("width", 100,
		"Output image width in pixels")
	height := flag.Int("height", 75,
		"Output image height in pixels")
	hwrap := flag.Bool("hwrap", true,
		"Treat the sample as horizontally periodic")
	vwrap := flag.Bool("vwrap", true,
		"Treat the sample as vertically periodic")
	rotate := flag.Bool("rotate", true,
		"Augment the alphabet with 90-degree rotations")
	seed := flag.Int64("seed", 0,
		"Random seed (0 seeds from the current time)")
	attempts := flag.Int("attempts", 0,
		"Give up after this many contradictions (0 retries forever)")
	sampleWidth := flag.Int("samplewidth", 0,
		"Downscale the sample to this width before encoding (0 keeps it)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sample, err := loadSample(*inputFile, *gen, *genSize, *seed)
	if err != nil {
		fmt.Printf("Error loading sample: %v\n", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *sampleWidth > 0 && *sampleWidth < sample.Cols() {
		rows := sample.Rows() * *sampleWidth / sample.Cols()
		sample = imageutil.ResizeGrid(sample, rows, *sampleWidth)
	}

	if *k < 1 || sample.Rows() < *k || sample.Cols() < *k {
		fmt.Printf("Sample %d×%d is too small for k=%d\n",
			sample.Rows(), sample.Cols(), *k)
		os.Exit(1)
	}
	if *height < *k || *width < *k {
		fmt.Printf("Output %d×%d must be at least k=%d on each side\n",
			*width, *height, *k)
		os.Exit(1)
	}

	begin := time.Now()
	var enc wfc.MatrixEncoder[imageutil.RGB]
	pat := enc.Fit(sample, *k, *hwrap, *vwrap, *rotate)
	fmt.Printf("sample: %d×%d, %d distinct colors\n",
		sample.Rows(), sample.Cols(), sample.DistinctColors())
	fmt.Printf("alphabet: %d tiles (k=%d, hwrap=%v, vwrap=%v, rotate=%v)\n",
		pat.Tiles(), *k, *hwrap, *vwrap, *rotate)
	fmt.Printf("Encoding time: %v\n", time.Since(begin))

	rng := rand.New(rand.NewSource(*seed))
	rows := *height - *k + 1
	cols := *width - *k + 1

	collapseStart := time.Now()
	for attempt := 1; ; attempt++ {
		wave, ok := wfc.Collapse(pat, rows, cols, rng)
		if !ok {
			fmt.Printf("attempt %d hit a contradiction, retrying\n", attempt)
			if *attempts > 0 && attempt >= *attempts {
				fmt.Printf("Giving up after %d attempts\n", attempt)
				os.Exit(1)
			}
			continue
		}

		decoded := enc.Decode(wave)
		if err := imageutil.SaveGrid(decoded, *outputFile); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s (%d×%d, %d attempt(s))\n",
			*outputFile, len(decoded[0]), len(decoded), attempt)
		fmt.Printf("Collapse time: %v\n", time.Since(collapseStart))
		break
	}
}
