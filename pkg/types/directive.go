package types

// Directive is a recognized source directive found during expansion.
// File and Line locate the directive in the script that contains it;
// Target is the path argument exactly as written, before resolution.
type Directive struct {
	File   string
	Line   int
	Target string
	Raw    string
}
