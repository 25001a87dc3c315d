package territory_test

import (
	"fmt"

	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/territory"
)

func ExampleCalculate() {
	elements := []registry.Element{
		{ID: "nav-home", Category: registry.CategoryNav, Bounds: geom.NewRect(0, 0, 100, 20), Measured: true},
		{ID: "about", Category: registry.CategoryContent, Bounds: geom.NewRect(0, 40, 300, 200), Measured: true},
	}
	vp := territory.Viewport{LayoutWidth: 400, VisibleWidth: 400, Height: 400}

	for _, t := range territory.Calculate(elements, vp, territory.Options{Gap: 8}) {
		b := t.TerritoryBounds
		fmt.Printf("%s: top=%g right=%g bottom=%g left=%g\n", t.ID, b.Top, b.Right, b.Bottom, b.Left)
	}
	// Output:
	// nav-home: top=4 right=396 bottom=26 left=4
	// about: top=34 right=396 bottom=396 left=4
}

func ExampleCalculate_scrollbar() {
	elements := []registry.Element{
		{ID: "about", Category: registry.CategoryContent, Bounds: geom.NewRect(20, 40, 300, 200), Measured: true},
	}
	// A 15-unit scrollbar narrows the visible width but not the layout width.
	vp := territory.Viewport{LayoutWidth: 400, VisibleWidth: 385, Height: 400}

	ts := territory.Calculate(elements, vp, territory.Options{Gap: 8})
	fmt.Println(ts[0].TerritoryBounds.Right)
	// Output:
	// 381
}
