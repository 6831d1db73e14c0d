package main

import (
	"github.com/philipparndt/shapegen/internal/config"
	"github.com/philipparndt/shapegen/pkg/shapes"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shapeFlags holds the command line overrides for a shape document
type shapeFlags struct {
	size   []float64
	pivot  string
	output string
	format string

	thickness float64
	sides     int
	degrees   float64
	endCaps   bool

	doorHeight float64
	legWidth   float64
	perimeter  bool

	mode          string
	stepHeight    float64
	steps         int
	homogeneous   bool
	circumference float64
	walls         bool
}

func (f *shapeFlags) register(fs *pflag.FlagSet, withOutput bool) {
	arch := shapes.DefaultArchParams()
	door := shapes.DefaultDoorParams()
	stairs := shapes.DefaultStairsParams()

	fs.Float64SliceVar(&f.size, "size", []float64{1, 1, 1}, "Size as x,y,z")
	fs.StringVar(&f.pivot, "pivot", "center", "Pivot: none, center or min")
	if withOutput {
		fs.StringVarP(&f.output, "output", "o", "", "Output file (default <shape>.<format>)")
		fs.StringVarP(&f.format, "format", "f", "", "Output format: stl, stl-ascii, 3mf, obj or scad")
	}

	fs.Float64Var(&f.thickness, "thickness", arch.Thickness, "Arch: ring thickness")
	fs.IntVar(&f.sides, "sides", arch.Sides, "Arch: number of curve samples")
	fs.Float64Var(&f.degrees, "degrees", arch.Degrees, "Arch: swept angle")
	fs.BoolVar(&f.endCaps, "end-caps", arch.EndCaps, "Arch: close the open ends")

	fs.Float64Var(&f.doorHeight, "door-height", door.DoorHeight, "Door: lintel height")
	fs.Float64Var(&f.legWidth, "leg-width", door.LegWidth, "Door: width of each leg")
	fs.BoolVar(&f.perimeter, "perimeter", door.Perimeter, "Door: close the outer sides")

	fs.StringVar(&f.mode, "mode", stairs.Mode.String(), "Stairs: derive steps by count or height")
	fs.Float64Var(&f.stepHeight, "step-height", stairs.StepHeight, "Stairs: height of one step")
	fs.IntVar(&f.steps, "steps", stairs.StepCount, "Stairs: number of steps")
	fs.BoolVar(&f.homogeneous, "homogeneous", stairs.Homogeneous, "Stairs: spread the height evenly")
	fs.Float64Var(&f.circumference, "circumference", stairs.Circumference, "Stairs: degrees to curve, 0 for straight")
	fs.BoolVar(&f.walls, "walls", stairs.Sides, "Stairs: build side walls")
}

// document turns the flags into a shape document for kind. Only flags the
// user set override the defaults.
func (f *shapeFlags) document(cmd *cobra.Command, kind string) (config.Document, error) {
	doc := config.Default(kind)
	changed := cmd.Flags().Changed

	if changed("size") {
		doc.Size = f.size
	}
	doc.Pivot = f.pivot
	doc.Output = f.output
	doc.Format = f.format

	if changed("thickness") {
		doc.Arch.Thickness = f.thickness
	}
	if changed("sides") {
		doc.Arch.Sides = f.sides
	}
	if changed("degrees") {
		doc.Arch.Degrees = f.degrees
	}
	if changed("end-caps") {
		doc.Arch.EndCaps = f.endCaps
	}

	if changed("door-height") {
		doc.Door.DoorHeight = f.doorHeight
	}
	if changed("leg-width") {
		doc.Door.LegWidth = f.legWidth
	}
	if changed("perimeter") {
		doc.Door.Perimeter = f.perimeter
	}

	if changed("mode") {
		if err := doc.Stairs.Mode.UnmarshalText([]byte(f.mode)); err != nil {
			return doc, err
		}
	}
	if changed("step-height") {
		doc.Stairs.StepHeight = f.stepHeight
	}
	if changed("steps") {
		doc.Stairs.StepCount = f.steps
	}
	if changed("homogeneous") {
		doc.Stairs.Homogeneous = f.homogeneous
	}
	if changed("circumference") {
		doc.Stairs.Circumference = f.circumference
	}
	if changed("walls") {
		doc.Stairs.Sides = f.walls
	}
	return doc, nil
}
