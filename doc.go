// Package router solves the microfluidic board routing problem: given a
// rectangular chip with a regular grid of fluidic ports and a set of
// desired connections, it computes a set of non-intersecting channel
// paths realising every connection.
//
// The internal/gridgeom, internal/astar, internal/priorityqueue and
// internal/f64 sub-packages provide the geometry kernel and the generic
// A* search engine. The vec and option sub-packages provide small
// supporting value types shared across the routing pipeline.
package router
