// Package ui contains the Bubble Tea program that runs the boot menu.
//
// The Model owns a state.Selection (cursor and countdown deadline) and routes
// each tea.Msg through a typed handler registry:
//   - key presses move the cursor, confirm the highlighted entry, and push the
//     deadline back; every received key counts as activity;
//   - tickMsg values drive the countdown. Exactly one tick is outstanding at a
//     time and it fires after the poll interval or at the deadline, whichever
//     comes first;
//   - window size messages only affect layout.
//
// Rendering is delegated to Render, a pure function of the title, labels,
// cursor and remaining seconds. The Model finishes with a Result once the user
// confirms an entry or the deadline passes, and Run hands that Result back to
// the caller after the terminal has been restored.
package ui
