package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ComradeVanti/earclip"
	"github.com/ComradeVanti/earclip/dbg"
)

// Demo of ear clipping triangulation. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an extra
// newline. Polygons should be simple and hole-free; winding order is
// normalized before triangulation, but simplicity is only checked with
// --strict.

var (
	draw    = kingpin.Flag("draw", "Render each triangulation to the terminal (iTerm only).").Bool()
	scale   = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("50").Float64()
	strict  = kingpin.Flag("strict", "Reject polygons with self-intersecting edges.").Bool()
	verbose = kingpin.Flag("verbose", "Dump classification state after every clip.").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polygons))

	for _, points := range polygons {
		points = earclip.Clockwise(points)
		if *strict {
			if err := earclip.CheckSimple(points); err != nil {
				log.Fatalf("Rejected polygon: %v", err)
			}
		}

		if *verbose {
			triangulateVerbose(points)
			continue
		}

		result, err := earclip.Triangulate(points)
		if err != nil {
			log.Fatalf("Triangulation failed: %v", err)
		}
		printTriangles(result.Triangles)
		if *draw {
			result.Draw(*scale)
		}
	}
}

// Verbose mode steps the lazy session one clip at a time so the evolving
// classification can be inspected.
func triangulateVerbose(points []earclip.Point) {
	session, err := earclip.NewTriangulator(points)
	if err != nil {
		log.Fatalf("Triangulation failed: %v", err)
	}
	fmt.Printf("session %s: %s\n", dbg.Name(session), session.DumpState())
	var triangles []earclip.Triangle
	for {
		tri, ok := session.Next()
		if !ok {
			break
		}
		triangles = append(triangles, tri)
		fmt.Printf("session %s: clipped (%d %d %d), now %s\n",
			dbg.Name(session), tri.A, tri.B, tri.C, session.DumpState())
	}
	if err := session.Err(); err != nil {
		log.Fatalf("Triangulation incomplete: %v", err)
	}
	printTriangles(triangles)
	if *draw {
		result := &earclip.Triangulation{Points: points, Triangles: triangles}
		result.Draw(*scale)
	}
}

func printTriangles(triangles []earclip.Triangle) {
	fmt.Printf("%d triangles\n", len(triangles))
	for _, tri := range triangles {
		fmt.Printf("%d %d %d\n", tri.A, tri.B, tri.C)
	}
}

func readPolygons(in *os.File) [][]earclip.Point {
	polygons := [][]earclip.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []earclip.Point{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []earclip.Point{}
			}
			continue
		}

		// Parse the point out of the line
		points = append(points, parsePoint(line))
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) earclip.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return earclip.Point{X: x, Y: y}
}
