package rings_test

import (
	"fmt"

	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

func ExampleGenerate() {
	t := territory.Territory{
		ID:              "about",
		ElementBounds:   geom.NewRect(40, 40, 20, 20),
		TerritoryBounds: geom.Bounds{Top: 4, Right: 96, Bottom: 96, Left: 4},
	}
	for _, r := range rings.Generate(t, 12) {
		fmt.Printf("x=%g y=%g w=%g h=%g\n", r.X, r.Y, r.Width, r.Height)
	}
	// Output:
	// x=40 y=40 w=20 h=20
	// x=28 y=28 w=44 h=44
	// x=16 y=16 w=68 h=68
	// x=4 y=4 w=92 h=92
}
