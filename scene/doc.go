// Package scene describes a frame of curves and renders it through a
// pixcurve.Renderer.
//
// A scene is a grid size plus an ordered list of curves. Scenes are built in
// code, from Default, or decoded from TOML or YAML files:
//
//	width = 1000
//	height = 1000
//	background = "rgb(0, 0, 0)"
//
//	[[curve]]
//	name = "arch"
//	type = "hermite"
//	points = [[100.0, 500.0], [150.0, 200.0], [900.0, 500.0], [-200.0, 300.0]]
//	segments = 20
//	show_line = true
//	color = "rgb(255, 255, 255)"
//
// A Scene keeps the curves it was built with as defaults. Callers animate
// the working copy in Scene.Curves and call Reset to restore the defaults.
package scene
