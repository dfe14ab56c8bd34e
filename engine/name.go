package engine

import (
	"path"
	"strings"
)

// interpreters whose argv[0] says nothing about the actual program:
// the script name is what operators recognize.
var interpreters = map[string]bool{
	"python": true, "python2": true, "python3": true,
	"node": true, "nodejs": true,
	"java": true, "ruby": true, "perl": true, "php": true,
}

var shells = map[string]bool{
	"bash": true, "sh": true, "zsh": true,
}

var scriptExt = map[string]bool{
	".py": true, ".js": true, ".rb": true, ".pl": true, ".php": true,
}

// ProgramName derives the aggregation key for a process.
// Plain binaries group under the basename of argv[0]. Interpreted and
// shell scripts group under "interpreter:script" so that e.g. two
// unrelated python daemons do not collapse into one "python" row.
func ProgramName(name string, cmdline []string) string {
	if len(cmdline) == 0 || cmdline[0] == "" {
		if name == "" {
			return "unknown"
		}
		return name
	}

	prog := path.Base(cmdline[0])

	if interpreters[prog] && len(cmdline) > 1 {
		script := path.Base(cmdline[1])
		if ext := path.Ext(script); scriptExt[ext] {
			script = strings.TrimSuffix(script, ext)
		}
		return prog + ":" + script
	}

	if shells[prog] && len(cmdline) > 1 {
		return prog + ":" + path.Base(cmdline[1])
	}

	return prog
}
