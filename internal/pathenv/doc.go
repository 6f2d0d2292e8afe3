// Package pathenv persists PATH environment extensions by appending export
// statements to the user's shell profile file.
package pathenv
