package logger

// Record is everything needed to render a single line. It lives for the
// duration of one call.
type Record struct {
	// Level is the severity tag.
	Level Level

	// File is the source file of the call site.
	File string

	// Line is the source line of the call site.
	Line int

	// Function is the enclosing function of the call site. It may be empty.
	Function string

	// Format is the fmt-style message template.
	Format string

	// Args are the values for the template's placeholders.
	Args []any
}
