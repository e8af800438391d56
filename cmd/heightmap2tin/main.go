// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command heightmap2tin triangulates a JSON-encoded grid of height samples
// and writes the result as a Wavefront OBJ mesh and an SVG wireframe.
//
// Usage:
//
//	heightmap2tin heights.json width height max-error out.obj out.svg
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/akriulin/tingrid/tin"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
)

const (
	canvasWidth  = 800
	canvasHeight = 800

	wireframeStyle = "fill:none;stroke:rgb(60,60,60);stroke-width:1;stroke-opacity:0.8"
)

func main() {
	if len(os.Args) != 7 {
		log.Fatalf("usage: %s heights.json width height max-error out.obj out.svg", os.Args[0])
	}

	heightsPath := os.Args[1]
	width, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("invalid width %q: %v", os.Args[2], err)
	}
	height, err := strconv.Atoi(os.Args[3])
	if err != nil {
		log.Fatalf("invalid height %q: %v", os.Args[3], err)
	}
	maxError, err := strconv.ParseFloat(os.Args[4], 64)
	if err != nil {
		log.Fatalf("invalid max-error %q: %v", os.Args[4], err)
	}
	objPath := os.Args[5]
	svgPath := os.Args[6]

	heights, err := loadHeights(heightsPath)
	if err != nil {
		log.Fatal(err)
	}

	points, triangles, err := tin.Triangulate(heights, width, height, maxError)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("triangulated %dx%d grid at max-error %g: %d points, %d triangles", width, height, maxError, len(points), len(triangles))

	if err := writeOBJ(objPath, heights, width, points, triangles); err != nil {
		log.Fatal(err)
	}
	if err := writeSVG(svgPath, width, height, points, triangles); err != nil {
		log.Fatal(err)
	}
}

func loadHeights(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heightmap: %w", err)
	}
	defer file.Close()

	var heights []float64
	if err := json.NewDecoder(file).Decode(&heights); err != nil {
		return nil, fmt.Errorf("decoding heightmap: %w", err)
	}
	return heights, nil
}

// writeOBJ emits the mesh as a Wavefront OBJ file: one "v x y z" line per
// vertex (its original sampled height as z) and one "f a b c" line per
// triangle, using OBJ's 1-based vertex indices.
func writeOBJ(path string, heights []float64, width int, points []tin.Point, triangles [][3]int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	defer file.Close()

	for _, p := range points {
		z := heights[width*p.Y+p.X]
		if _, err := fmt.Fprintf(file, "v %d %d %g\n", p.X, p.Y, z); err != nil {
			return fmt.Errorf("writing OBJ vertex: %w", err)
		}
	}
	for _, tri := range triangles {
		if _, err := fmt.Fprintf(file, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1); err != nil {
			return fmt.Errorf("writing OBJ face: %w", err)
		}
	}
	return nil
}

func projectToScreen(p tin.Point, width, height int) (int, int) {
	scaleX := float64(canvasWidth) / float64(width-1)
	scaleY := float64(canvasHeight) / float64(height-1)

	screen := r2.Point{X: float64(p.X) * scaleX, Y: float64(p.Y) * scaleY}
	return int(screen.X), int(screen.Y)
}

// writeSVG renders the triangulated mesh as a wireframe, one unfilled
// polygon per triangle, the same way the teacher's examples/s2voronoi and
// examples/s2delaunay binaries render their own diagrams.
func writeSVG(path string, width, height int, points []tin.Point, triangles [][3]int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file: %w", err)
	}
	defer file.Close()

	canvas := svg.New(file)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:rgb(255,255,255)")

	xs := make([]int, 3)
	ys := make([]int, 3)
	for _, tri := range triangles {
		for i, v := range tri {
			xs[i], ys[i] = projectToScreen(points[v], width, height)
		}
		canvas.Polygon(xs, ys, wireframeStyle)
	}
	canvas.End()
	return nil
}
