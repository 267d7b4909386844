// Package traces provides ready-made graph2d traces.
//
// Every type embeds *graph2d.Trace, so it is attached, drawn and closed
// like any other trace. Methods that change the plotted data call Generate
// themselves; the next Draw re-renders.
//
//   - [Line] samples an equation y = f(x) once per pixel column.
//   - [Scatter] draws a point series.
//   - [Bars] draws a bar per value.
//   - [Rolling] keeps the most recent samples in a fixed-size window.
package traces
