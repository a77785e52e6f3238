// Package color provides the lipgloss styles used by calcctl's terminal
// output.
//
// Colors adapt to the terminal background; lipgloss degrades them to the
// terminal's color profile and drops them entirely when NO_COLOR is set or
// output is not a terminal.
//
// # Usage Example
//
//	color.Initialize(true)
//	fmt.Println(color.DefaultStyle.Render("notSoSimpleCoreCalculatorService"))
package color
