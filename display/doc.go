// Package display runs a playground.State in an Ebitengine window. It supplies
// the window-backed Renderer and InputSource, the FPS overlay, and PNG
// screenshots.
package display
