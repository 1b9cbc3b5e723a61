// Package tui hosts the tab groups of a document in the terminal.
//
// The App plays the part a browser plays for the markup: it keeps the
// focused element, moves it on Tab and Shift+Tab, forwards arrow, Home,
// End, Delete, Enter and Space to the group owning the focused element,
// and turns mouse clicks on tabs and close controls into clicks on the
// group. Everything it draws is read back from the groups.
//
// Usage:
//
//	program, app, err := tui.NewProgram(tui.Options{
//	    Load:     func() (*dom.Document, error) { return dom.Load(path, opts) },
//	    Tabs:     opts,
//	    Location: location.NewMemory(""),
//	    Mouse:    true,
//	})
//	if err != nil {
//	    return err
//	}
//	_, err = program.Run()
//
// A watcher feeding Options.Changes makes the App reparse the document on
// every change while keeping the fragment.
package tui
