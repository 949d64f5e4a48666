// Package flagx holds helpers for parsing a subset of command-line flags
// without tripping over flags that belong to other parsers.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the elements of args that are allowed flags, together
// with their values.
//
// Two forms are recognised:
//
//	-d netflex.db      flag and value as separate arguments
//	--config=conf.json flag and value joined with '='
//
// As with the flag package, a name may be spelled with one or two leading
// dashes; "-config" and "--config" match each other. Arguments are returned
// in their original spelling.
//
// A following argument that starts with '-' is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[flagName(name)]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[flagName(arg)]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// flagName folds a double-dash spelling onto the single-dash one.
func flagName(arg string) string {
	if strings.HasPrefix(arg, "--") {
		return arg[1:]
	}
	return arg
}

// ConfigFilePath extracts the JSON config path given with -c or -config.
// It returns "" when neither flag is present. When both are given the last
// one wins.
func ConfigFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
