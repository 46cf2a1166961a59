// Package control translates user input into grid mutations.
//
// Front ends (the raylib window and the terminal UI) feed actions and clicks
// into a [Controller] and call [Controller.Update] once per loop iteration.
// The controller decides when a generation is committed, so the input and
// render rate is independent of the simulation rate.
//
//   - [Controller]: running/paused state machine with tick gating
//   - [Layout]: maps screen coordinates to grid cells
//   - [FixedStep]: frame-time accumulator for fixed-rate updates
package control
