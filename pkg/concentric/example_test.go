package concentric_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/concentric/pkg/concentric"
	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
)

func ExampleEngine() {
	host := concentric.StaticHost{LayoutWidth: 400, VisibleWidth: 400, InnerHeight: 400}
	e := concentric.New(context.Background(), host, concentric.DefaultOptions())

	e.Register("nav-home", registry.CategoryNav, concentric.StaticMeasurer(geom.NewRect(0, 0, 100, 20)))
	e.Register("about", registry.CategoryContent, concentric.StaticMeasurer(geom.NewRect(20, 40, 280, 200)))
	e.Tick()

	snap := e.Snapshot()
	for _, t := range snap.Territories {
		fmt.Printf("%s: %d rings\n", t.ID, len(snap.RingsFor(t.ID)))
	}

	e.PointerDown("about", drag.Mouse(geom.Point{X: 100, Y: 100}))
	off, _ := e.PointerMove(drag.Mouse(geom.Point{X: 250, Y: 100}))
	e.PointerUp()
	fmt.Printf("offset: %+v\n", off)
	// Output:
	// nav-home: 26 rings
	// about: 14 rings
	// offset: {X:96 Y:0}
}
