package foliotypes

// LineClass is the presentation class of a transcript line. It carries no behavior.
type LineClass string

const (
	// ClassCommand marks the echoed "<prompt> command" line.
	ClassCommand LineClass = "command"
	// ClassNormal is regular command output.
	ClassNormal LineClass = "normal"
	// ClassError marks failures and unknown commands.
	ClassError LineClass = "error"
	// ClassInfo marks informational notes such as completion lists.
	ClassInfo LineClass = "info"
	// ClassSuccess marks confirmations.
	ClassSuccess LineClass = "success"
	// ClassASCII marks ASCII art, rendered without wrapping.
	ClassASCII LineClass = "ascii"
	// ClassMarkdown marks output rendered as markdown by styled front ends.
	ClassMarkdown LineClass = "markdown"
)

// AllClasses lists every line class, used by themes to build their style tables.
var AllClasses = []LineClass{
	ClassCommand,
	ClassNormal,
	ClassError,
	ClassInfo,
	ClassSuccess,
	ClassASCII,
	ClassMarkdown,
}
