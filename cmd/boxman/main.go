// Command boxman drives a box-man skeleton between a rest and a stride
// stance and prints the skinning palette.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"dasa.cc/skin/geom"
	"dasa.cc/skin/skel"
)

var (
	flagT           = flag.Float64("t", 0, "Blend factor from rest (0) to stride (1).")
	flagRoot        = flag.String("root", "0,0,-5", "Root translation as x,y,z.")
	flagYaw         = flag.Float64("yaw", 0, "Root rotation about y in radians.")
	flagDur         = flag.Duration("dur", time.Second, "Duration of each fade between stances.")
	flagFrames      = flag.Int("frames", 0, "Frames to step at 60Hz fading between stances; zero prints one palette at -t.")
	flagFormat      = flag.String("format", formatDQ, "Palette print format: dq, vec4 or mat.")
	flagInteractive = flag.Bool("i", false, "Interactive prompt.")
	flagVerbose     = flag.Bool("v", false, "verbose")
)

var logger = log.New(os.Stderr, "boxman: ", 0)

const frame = time.Second / 60

func parseVec(s string) (geom.Vec, error) {
	xs := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(xs) != 3 {
		return geom.Vec{}, fmt.Errorf("want x,y,z, have %q", s)
	}
	var v [3]float64
	for i, x := range xs {
		var err error
		if v[i], err = parseFinite(x); err != nil {
			return geom.Vec{}, fmt.Errorf("bad component %q: %w", x, err)
		}
	}
	return geom.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

// parseFinite parses s as a float64, refusing NaN and infinities.
func parseFinite(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return x, nil
}

func rootOf(offset geom.Vec, yaw float64) geom.DualQuat {
	return geom.FromTranslation(offset).Mul(geom.FromAxisAngle(geom.J, yaw))
}

// fade prints a palette per frame while a fader swings t back and forth.
func fade(w io.Writer, r *rig, root geom.DualQuat, frames int, dur time.Duration, format string) error {
	f := skel.NewFader(skel.Duration(dur))
	epoch := time.Unix(0, 0)
	f.Stage(epoch, 1)
	for i := 0; i < frames; i++ {
		now := epoch.Add(time.Duration(i) * frame)
		t, ok := f.Step(now)
		if !ok {
			logger.Printf("frame %v: reached %v", i, f.To())
			f.Stage(now, 1-f.To())
		}
		pal, err := r.animate(root, t)
		if err != nil {
			return fmt.Errorf("frame %v: %w", i, err)
		}
		fmt.Fprintf(w, "frame %v t=%.4f\n", i, t)
		if err := r.printPalette(w, pal, format); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()

	log.SetFlags(0)
	if !*flagVerbose {
		logger.SetOutput(io.Discard)
	}

	offset, err := parseVec(*flagRoot)
	if err != nil {
		log.Fatalf("-root: %v", err)
	}
	if math.IsNaN(*flagT) || math.IsInf(*flagT, 0) {
		log.Fatalf("-t: blend factor must be finite, have %v", *flagT)
	}
	if !slices.Contains(formats, *flagFormat) {
		log.Fatalf("-format: want one of %v, have %q", formats, *flagFormat)
	}
	if math.IsNaN(*flagYaw) || math.IsInf(*flagYaw, 0) {
		log.Fatalf("-yaw: must be finite, have %v", *flagYaw)
	}
	r, err := newrig(boxman)
	if err != nil {
		log.Fatal(err)
	}
	root := rootOf(offset, *flagYaw)
	logger.Printf("%v joints, root %s", r.s.Len(), root)

	switch {
	case *flagInteractive:
		if err := repl(r, root, *flagT, *flagFormat); err != nil {
			log.Fatal(err)
		}
	case *flagFrames > 0:
		if err := fade(os.Stdout, r, root, *flagFrames, *flagDur, *flagFormat); err != nil {
			log.Fatal(err)
		}
	default:
		pal, err := r.animate(root, *flagT)
		if err != nil {
			log.Fatal(err)
		}
		if err := r.printPalette(os.Stdout, pal, *flagFormat); err != nil {
			log.Fatal(err)
		}
	}
}
