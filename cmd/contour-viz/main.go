// Command contour-viz runs the full contour debugging pipeline over a
// single image and writes annotated PNGs plus a JSON report.
//
// The binary wires external collaborators to the library: imaging for
// decode/save, bild for blur and thresholding, and (with the gocv
// build tag) OpenCV for border tracing, minimum-area rectangles and
// connected-component labelling. Built without the tag it exits with
// an explanatory error.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/contourlab/contourdbg/contour"
	"github.com/contourlab/contourdbg/internal/report"
	"github.com/contourlab/contourdbg/internal/trace"
	"github.com/contourlab/contourdbg/regions"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	input          string
	outDir         string
	maxAspectRatio float64
	threshold      uint
	blurRadius     float64
	invert         bool
	top            int
	alpha          uint
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("contour-viz %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var opts options
	flag.StringVar(&opts.input, "input", "", "input image path (png, jpeg or gif)")
	flag.StringVar(&opts.outDir, "out-dir", ".", "directory for the generated PNGs and report.json")
	flag.Float64Var(&opts.maxAspectRatio, "max-aspect-ratio", 5.0, "aspect-ratio threshold for the sliver filter")
	flag.UintVar(&opts.threshold, "threshold", 128, "binarization level (0-255)")
	flag.Float64Var(&opts.blurRadius, "blur", 1.0, "Gaussian blur radius applied before thresholding")
	flag.BoolVar(&opts.invert, "invert", true, "treat dark pixels as foreground")
	flag.IntVar(&opts.top, "top", 5, "number of principal connected components to color")
	flag.UintVar(&opts.alpha, "alpha", 255, "alpha of the generated palette colors")
	flag.Parse()

	// Logs go to stderr so stdout stays clean for piping report data.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("CONTOUR_VIZ_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("contour-viz v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if opts.input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if opts.threshold > 255 || opts.alpha > 255 {
		log.Fatalf("threshold and alpha must be in 0-255")
	}

	if err := run(opts, debug); err != nil {
		log.Fatalf("contour-viz: %v", err)
	}
}

func run(opts options, debug bool) error {
	img, err := imaging.Open(opts.input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.input, err)
	}
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	// Preprocessing collaborators: blur to suppress noise, then
	// threshold to a binary image.
	blurred := blur.Gaussian(img, opts.blurRadius)
	binary := segment.Threshold(blurred, uint8(opts.threshold))
	if opts.invert {
		invertGray(binary)
	}

	tracer := trace.New()
	contours, err := tracer.Trace(binary)
	if err != nil {
		return fmt.Errorf("tracing contours: %w", err)
	}
	log.Printf("traced %d contours from %s (%dx%d)", len(contours), opts.input, width, height)

	filtered := contour.FilterByAspectRatio(
		slices.Clone(contours), opts.maxAspectRatio, nil, tracer.MinAreaRect)
	log.Printf("aspect-ratio filter (max %.2f) kept %d of %d contours",
		opts.maxAspectRatio, len(filtered), len(contours))

	if debug {
		ranked := contour.RankByPerimeter(slices.Clone(contours))
		for i, r := range ranked[:min(5, len(ranked))] {
			log.Printf("  perimeter rank %d: %.1fpx, %d points, %s",
				i+1, r.Perimeter, len(r.Contour.Points), r.Contour.BorderType)
		}
		counted := contour.RankByChildCount(slices.Clone(contours))
		for i, c := range counted[:min(5, len(counted))] {
			log.Printf("  child rank %d: %d children, %d points",
				i+1, c.Children, len(c.Contour.Points))
		}
	}

	rep := report.Build(opts.input, width, height, contours,
		len(filtered), opts.maxAspectRatio, tracer.MinAreaRect)

	base := imaging.Grayscale(img)

	if err := saveContourOverlay(filepath.Join(opts.outDir, "contours_before.png"), base, contours, red); err != nil {
		return err
	}
	if err := saveContourOverlay(filepath.Join(opts.outDir, "contours_after.png"), base, filtered, green); err != nil {
		return err
	}
	if err := saveBoxOverlay(filepath.Join(opts.outDir, "bounding_boxes.png"), base, contours, tracer); err != nil {
		return err
	}

	labels, err := tracer.Components(binary)
	if err != nil {
		return fmt.Errorf("labelling components: %w", err)
	}
	sizes := regions.FromLabelMap(labels)
	principal := regions.Principal(sizes, opts.top)
	colors := regions.PrincipalColors(sizes, opts.top, uint8(opts.alpha))
	rep.Regions = report.RegionTable(principal, colors)

	if err := saveComponentOverlay(filepath.Join(opts.outDir, "components.png"), base, labels, colors); err != nil {
		return err
	}

	return writeReport(filepath.Join(opts.outDir, "report.json"), rep)
}

func writeReport(path string, rep *report.Report) error {
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Printf("wrote %s", path)
	return nil
}

// invertGray flips foreground and background in place.
func invertGray(img *image.Gray) {
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}
