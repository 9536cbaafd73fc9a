// Command triangulate computes a single pose from landmark positions and
// bearings given on the command line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"triangulator/internal/position"
)

var (
	landmarksFlag = flag.String("landmarks", "-1,2;3,1;1,-1", "three landmarks as x,y pairs separated by ';'")
	bearingsFlag  = flag.String("bearings", "86.5650512,-11.5650512,-75", "three bearings in degrees, same order as landmarks")
	eps           = flag.Float64("eps", position.DefaultEps, "angular tolerance in degrees")
)

func main() {
	flag.Parse()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	landmarks, err := parseLandmarks(*landmarksFlag)
	if err != nil {
		log.Error("bad -landmarks", "err", err)
		os.Exit(2)
	}
	bearings, err := parseFloats(*bearingsFlag, ",")
	if err != nil {
		log.Error("bad -bearings", "err", err)
		os.Exit(2)
	}

	pose, err := position.Triangulate(landmarks, bearings, *eps)
	if err != nil {
		log.Error("triangulation failed", "err", err)
		os.Exit(1)
	}

	fmt.Println("Landmark coordinates:", *landmarksFlag)
	fmt.Println("Angles to landmarks:", *bearingsFlag)
	fmt.Println(pose)
}

func parseLandmarks(s string) ([]r2.Vec, error) {
	var out []r2.Vec
	for _, pair := range strings.Split(s, ";") {
		xy, err := parseFloats(pair, ",")
		if err != nil {
			return nil, err
		}
		if len(xy) != 2 {
			return nil, fmt.Errorf("landmark %q: want x,y", pair)
		}
		out = append(out, r2.Vec{X: xy[0], Y: xy[1]})
	}
	return out, nil
}

func parseFloats(s, sep string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, sep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
