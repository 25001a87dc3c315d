// Package scene reads and solves offline layout scenes.
//
// A scene is a document describing a window, the elements on the page and
// optionally their drag offsets. It can be written in TOML, YAML or JSON;
// the format is chosen by file extension.
//
//	[viewport]
//	layout_width = 400
//	visible_width = 400
//	inner_height = 400
//
//	[[elements]]
//	id = "nav-home"
//	category = "nav"
//	x = 0
//	y = 0
//	width = 100
//	height = 20
//
//	[[elements]]
//	id = "about"
//	category = "content-section"
//	x = 20
//	y = 40
//	width = 280
//	height = 200
//
//	[offsets]
//	about = { x = 150, y = 0 }
//
// Element rectangles are base rectangles in document coordinates (viewport
// coordinates for pinned elements). Elements without an id receive a
// random UUID when loaded.
//
// [Solve] runs a scene through a [concentric.Engine] exactly as a live host
// would and returns the published snapshot, with every offset constrained
// to its territory.
package scene
