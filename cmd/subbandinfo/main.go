// Command subbandinfo prints properties of the shipped wavelet filter pairs
// and reports subband statistics for an image.
//
// Usage:
//
//	subbandinfo [flags] [preset-name ...]
//
// Without arguments it prints info for all presets using a synthetic test
// image. With -image it decomposes a binary PGM (P5) file instead.
//
// Examples:
//
//	subbandinfo haar
//	subbandinfo -size 256x256 spline4 biorth8
//	subbandinfo -image lena.pgm biorth8
//	subbandinfo -list
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet/image"
)

type presetEntry struct {
	name    string
	build   func() (wavelet.Filter, wavelet.Filter)
	comment string
}

var registry = []presetEntry{
	{"haar", wavelet.Haar, "orthonormal 2-tap"},
	{"spline4", wavelet.Spline4, "4-tap spline"},
	{"biorth8", wavelet.Biorth8, "8-tap biorthogonal"},
}

func main() {
	size := flag.String("size", "128x128", "synthetic test image size as WxH")
	imgPath := flag.String("image", "", "binary PGM (P5) file to decompose instead of the synthetic image")
	list := flag.Bool("list", false, "list available preset names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: subbandinfo [flags] [preset-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints wavelet filter pair properties and subband statistics.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Printf("%s\t%s\n", e.name, e.comment)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	img, err := loadImage(*imgPath, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "subbandinfo: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "preset\tclass\ttaps\tdelay\tLL energy\tLH energy\tHL energy\tHH energy\tmax err\n")

	for _, name := range names {
		entry, ok := lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "subbandinfo: unknown preset %q (try -list)\n", name)
			os.Exit(1)
		}
		if err := report(w, entry, img); err != nil {
			fmt.Fprintf(os.Stderr, "subbandinfo: %s: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func lookup(name string) (presetEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return presetEntry{}, false
}

func report(w io.Writer, entry presetEntry, img *image.FloatImage) error {
	h0, h1 := entry.build()

	coder, err := image.NewCoder(h0, h1, wavelet.WithComplementaryCheck(1e-9))
	if err != nil {
		return err
	}

	quad, err := coder.Analyze(img)
	if err != nil {
		return err
	}

	restored, err := coder.Synthesize(quad, img.Width(), img.Height())
	if err != nil {
		return err
	}

	maxErr := 0.0
	orig, rec := img.Data(), restored.Data()
	for i := range orig {
		if d := math.Abs(orig[i] - rec[i]); d > maxErr {
			maxErr = d
		}
	}

	delay := (h0.Length()+h1.Length())/2 - 1
	fmt.Fprintf(w, "%s\t%v/%v\t%d+%d\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.2e\n",
		entry.name, h0.Symmetry(), h1.Symmetry(), h0.Length(), h1.Length(), delay,
		energy(quad.LL), energy(quad.LH), energy(quad.HL), energy(quad.HH), maxErr)
	return nil
}

func energy(img *image.FloatImage) float64 {
	sum := 0.0
	for _, v := range img.Data() {
		sum += v * v
	}
	return sum
}

func loadImage(path, size string) (*image.FloatImage, error) {
	if path != "" {
		return loadPGM(path)
	}

	var width, height int
	if _, err := fmt.Sscanf(size, "%dx%d", &width, &height); err != nil || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid -size %q", size)
	}

	// Synthetic test pattern: smooth gradient plus two spatial frequencies.
	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x), float64(y)
			data[y*width+x] = 96 +
				32*math.Sin(2*math.Pi*fx/float64(width)*4) +
				24*math.Sin(2*math.Pi*fy/float64(height)*7) +
				fx/8 + fy/16
		}
	}
	return image.FromData(data, width, height)
}

// loadPGM reads a binary (P5) PGM file with maxval <= 255.
func loadPGM(path string) (*image.FloatImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	magic, err := pgmToken(r)
	if err != nil || magic != "P5" {
		return nil, fmt.Errorf("%s: not a binary PGM file", path)
	}

	var dims [3]int
	for i := range dims {
		tok, err := pgmToken(r)
		if err != nil {
			return nil, fmt.Errorf("%s: truncated header", path)
		}
		if _, err := fmt.Sscanf(tok, "%d", &dims[i]); err != nil {
			return nil, fmt.Errorf("%s: bad header token %q", path, tok)
		}
	}

	width, height, maxval := dims[0], dims[1], dims[2]
	if width <= 0 || height <= 0 || maxval <= 0 {
		return nil, fmt.Errorf("%s: invalid header %dx%d maxval %d", path, width, height, maxval)
	}
	if maxval > 255 {
		return nil, fmt.Errorf("%s: 16-bit PGM not supported", path)
	}

	pix := make([]byte, width*height)
	if _, err := io.ReadFull(r, pix); err != nil {
		return nil, fmt.Errorf("%s: truncated pixel data: %w", path, err)
	}

	return image.FromGray(pix, width, height)
}

// pgmToken returns the next whitespace-delimited header token, skipping
// # comments.
func pgmToken(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}

		switch {
		case b == '#':
			if _, err := r.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		default:
			sb.WriteByte(b)
		}
	}
}
